// Package serverinfofile publishes the bridge's listening addresses so that the IDE can find it.
package serverinfofile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyInfoFile = "serverInfoFilePath"
	_pidKey            = "pid"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ServerInfoFile manages the contents of a single JSON info file. The file is removed when the bridge stops.
type ServerInfoFile interface {
	UpdateField(key string, value string) error
}

type module struct {
	infofile     string
	fs           fs.BridgeFS
	logger       *zap.SugaredLogger
	fileContents map[string]string
	mu           sync.Mutex
}

// Params define values to be used by ServerInfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.BridgeFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a ServerInfoFile. The process id is always part of the published contents.
func New(p Params) (ServerInfoFile, error) {
	m := &module{
		fs:     p.FS,
		logger: p.Logger,
		fileContents: map[string]string{
			_pidKey: strconv.Itoa(os.Getpid()),
		},
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: m.OnStop,
	})
	return m, nil
}

func (m *module) OnStop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.fs.FileExists(m.infofile)
	if err != nil || !exists {
		return err
	}
	return m.fs.Remove(m.infofile)
}

func (m *module) UpdateField(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fileContents[key] = value
	jsonOutput, err := json.Marshal(m.fileContents)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := m.fs.MkdirAll(filepath.Dir(m.infofile)); err != nil {
		return fmt.Errorf("creating info file directory: %w", err)
	}
	if err := m.fs.WriteFile(m.infofile, jsonOutput); err != nil {
		return fmt.Errorf("writing info file: %w", err)
	}
	m.logger.Infow("connection info saved", zap.String("file", m.infofile), zap.String(key, value))
	return nil
}

func (m *module) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyInfoFile).Populate(&m.infofile); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}
	if m.infofile == "" {
		return fmt.Errorf("missing field %q in config", _configKeyInfoFile)
	}
	return nil
}
