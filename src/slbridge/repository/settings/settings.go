// Package settings stores the user's analysis settings.
package settings

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"github.com/uber/slcore-bridge/src/slbridge/internal/initialization"
	"github.com/uber/slcore-bridge/src/slbridge/internal/notify"
	"github.com/uber/slcore-bridge/src/slbridge/model"
	"github.com/uber/slcore-bridge/src/slbridge/repository/filewatch"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const _configKeyPath = "repositories.settingsPath"

// Repository provides the analysis properties configured by the user.
type Repository interface {
	initialization.Initializable

	// AnalysisProperties returns the global properties overlaid with those of the given scope.
	// The returned map is a copy owned by the caller.
	AnalysisProperties(ctx context.Context, scopeID string) map[string]string
	SubscribeSettingsChanged(fn func(entity.SettingsChangedEvent)) (unsubscribe func())
}

// Params define values to be used by the settings repository.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.BridgeFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type repository struct {
	path   string
	fs     fs.BridgeFS
	logger *zap.SugaredLogger

	mu       sync.Mutex
	settings model.SettingsFile
	watcher  *filewatch.Watcher

	settingsChanged notify.Listeners[entity.SettingsChangedEvent]
	initProcessor   initialization.Processor
}

// New returns a settings repository backed by the configured settings file.
func New(p Params) (Repository, error) {
	var path string
	if err := p.Config.Get(_configKeyPath).Populate(&path); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyPath, err)
	}
	if path == "" {
		return nil, fmt.Errorf("missing field %q in config", _configKeyPath)
	}

	r := &repository{
		path:   path,
		fs:     p.FS,
		logger: p.Logger.With("component", "settings-repository"),
	}
	r.initProcessor = initialization.New(initialization.Params{
		Owner:      "settings-repository",
		Initialize: r.initialize,
		Logger:     p.Logger,
	})

	p.Lifecycle.Append(fx.Hook{
		OnStop: r.onStop,
	})
	return r, nil
}

func (r *repository) InitializationProcessor() initialization.Processor {
	return r.initProcessor
}

func (r *repository) AnalysisProperties(ctx context.Context, scopeID string) map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	properties := make(map[string]string, len(r.settings.AnalysisProperties))
	maps.Copy(properties, r.settings.AnalysisProperties)
	if solution, ok := r.settings.Solutions[scopeID]; ok {
		maps.Copy(properties, solution.AnalysisProperties)
	}
	return properties
}

func (r *repository) SubscribeSettingsChanged(fn func(entity.SettingsChangedEvent)) func() {
	return r.settingsChanged.Subscribe(fn)
}

func (r *repository) initialize(ctx context.Context) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if _, err := r.load(); err != nil {
		return err
	}

	watcher, err := filewatch.New(r.path, filewatch.DefaultDebounce, r.reload, r.logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		watcher.Close()
		return err
	}

	r.mu.Lock()
	r.watcher = watcher
	r.mu.Unlock()
	return nil
}

func (r *repository) onStop(ctx context.Context) error {
	r.mu.Lock()
	watcher := r.watcher
	r.watcher = nil
	r.mu.Unlock()

	if watcher == nil {
		return nil
	}
	return watcher.Close()
}

func (r *repository) reload() {
	changed, err := r.load()
	if err != nil {
		r.logger.Warnf("failed to reload settings: %v", err)
		return
	}
	if changed {
		r.logger.Info("settings changed")
		r.settingsChanged.Notify(entity.SettingsChangedEvent{})
	}
}

func (r *repository) load() (changed bool, err error) {
	var settings model.SettingsFile

	exists, err := r.fs.FileExists(r.path)
	if err != nil {
		return false, fmt.Errorf("checking settings file: %w", err)
	}
	if exists {
		data, err := r.fs.ReadFile(r.path)
		if err != nil {
			return false, fmt.Errorf("reading settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return false, fmt.Errorf("parsing settings file: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	changed = !reflect.DeepEqual(r.settings, settings)
	r.settings = settings
	return changed, nil
}
