package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyCacheSize = "analysis.compileDatabaseCacheSize"
	_configKeyFileName  = "analysis.compileDatabaseFileName"

	_defaultCacheSize = 256
	_defaultFileName  = "compile_commands.json"
)

// CompileDatabaseHandle is a temporary compilation database that holds only the entries of one file.
type CompileDatabaseHandle interface {
	// Path is the location of the temporary compilation database.
	Path() string
	// Close removes the temporary compilation database. Only the first call has an effect.
	Close() error
}

// CompileDatabaseLocator finds the compilation database entries of a C-family file.
type CompileDatabaseLocator interface {
	// Locate returns a handle for filePath, or nil if no compilation database lists it.
	// The search walks up from the file's directory and stops at scopeRoot when the file is inside it.
	Locate(ctx context.Context, filePath, scopeRoot string) (CompileDatabaseHandle, error)
}

// LocatorParams are inbound parameters to create a CompileDatabaseLocator.
type LocatorParams struct {
	fx.In

	Config config.Provider
	FS     fs.BridgeFS
	Logger *zap.SugaredLogger
}

type locator struct {
	fs       fs.BridgeFS
	fileName string
	logger   *zap.SugaredLogger

	// located maps a directory to the compilation database that serves it.
	located *lru.Cache[string, string]
}

type compileCommand struct {
	Directory string `json:"directory"`
	File      string `json:"file"`
}

// NewCompileDatabaseLocator creates a locator configured from the analysis config section.
func NewCompileDatabaseLocator(p LocatorParams) (CompileDatabaseLocator, error) {
	cacheSize := _defaultCacheSize
	if err := p.Config.Get(_configKeyCacheSize).Populate(&cacheSize); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyCacheSize, err)
	}
	fileName := _defaultFileName
	if err := p.Config.Get(_configKeyFileName).Populate(&fileName); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyFileName, err)
	}

	located, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating compilation database cache: %w", err)
	}
	return &locator{
		fs:       p.FS,
		fileName: fileName,
		logger:   p.Logger.With("component", "compile-database"),
		located:  located,
	}, nil
}

func (l *locator) Locate(ctx context.Context, filePath, scopeRoot string) (CompileDatabaseHandle, error) {
	dbPath, err := l.find(ctx, filepath.Dir(filePath), scopeRoot)
	if err != nil || dbPath == "" {
		return nil, err
	}

	entries, err := l.entriesFor(dbPath, filePath)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		l.logger.Debugw("file is not listed in the compilation database", zap.String("file", filePath), zap.String("database", dbPath))
		return nil, nil
	}
	return l.writeTemp(entries)
}

// find returns the closest compilation database above dir, or "" if there is none.
func (l *locator) find(ctx context.Context, dir, scopeRoot string) (string, error) {
	stop := ""
	if scopeRoot != "" && isWithin(dir, scopeRoot) {
		stop = filepath.Clean(scopeRoot)
	}

	var visited []string
	for current := filepath.Clean(dir); ; current = filepath.Dir(current) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if dbPath, ok := l.located.Get(current); ok && (stop == "" || isWithin(filepath.Dir(dbPath), stop)) {
			if exists, err := l.fs.FileExists(dbPath); err == nil && exists {
				l.remember(visited, dbPath)
				return dbPath, nil
			}
			l.located.Remove(current)
		}

		visited = append(visited, current)
		candidate := filepath.Join(current, l.fileName)
		exists, err := l.fs.FileExists(candidate)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
		if exists {
			l.remember(visited, candidate)
			return candidate, nil
		}

		if current == stop || filepath.Dir(current) == current {
			return "", nil
		}
	}
}

func (l *locator) remember(dirs []string, dbPath string) {
	for _, dir := range dirs {
		l.located.Add(dir, dbPath)
	}
}

// entriesFor returns the raw entries of the database that compile filePath.
func (l *locator) entriesFor(dbPath, filePath string) ([]json.RawMessage, error) {
	data, err := l.fs.ReadFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("reading compilation database: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing compilation database %s: %w", dbPath, err)
	}

	target := filepath.Clean(filePath)
	var entries []json.RawMessage
	for _, entry := range raw {
		var cmd compileCommand
		if err := json.Unmarshal(entry, &cmd); err != nil {
			continue
		}
		file := cmd.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(cmd.Directory, file)
		}
		if filepath.Clean(file) == target {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (l *locator) writeTemp(entries []json.RawMessage) (CompileDatabaseHandle, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	f, err := l.fs.TempFile("", "compile_commands-*.json")
	if err != nil {
		return nil, fmt.Errorf("creating temporary compilation database: %w", err)
	}
	h := &compileDatabaseHandle{path: f.Name(), fs: l.fs}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("writing temporary compilation database: %w", err)
	}
	return h, nil
}

type compileDatabaseHandle struct {
	path string
	fs   fs.BridgeFS

	once sync.Once
	err  error
}

func (h *compileDatabaseHandle) Path() string {
	return h.path
}

func (h *compileDatabaseHandle) Close() error {
	h.once.Do(func() {
		h.err = h.fs.Remove(h.path)
	})
	return h.err
}

func isWithin(path, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
