// Package connection stores the server connections configured by the user.
package connection

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"github.com/uber/slcore-bridge/src/slbridge/internal/initialization"
	"github.com/uber/slcore-bridge/src/slbridge/internal/notify"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"github.com/uber/slcore-bridge/src/slbridge/model"
	"github.com/uber/slcore-bridge/src/slbridge/repository/filewatch"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const _configKeyPath = "repositories.connectionsPath"

// Repository holds the connections stored in the connections file and reloads them when the file changes.
type Repository interface {
	initialization.Initializable

	GetAll(ctx context.Context) []entity.ServerConnection
	TryGet(ctx context.Context, id string) (entity.ServerConnection, bool)
	// NotifyCredentialsChanged raises a credentials changed event for a known connection.
	NotifyCredentialsChanged(ctx context.Context, id string) error

	SubscribeConnectionsChanged(fn func(entity.ConnectionsChangedEvent)) (unsubscribe func())
	SubscribeCredentialsChanged(fn func(entity.CredentialsChangedEvent)) (unsubscribe func())
}

// Params define values to be used by the connection repository.
type Params struct {
	fx.In

	Config    config.Provider
	FS        fs.BridgeFS
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type repository struct {
	path   string
	fs     fs.BridgeFS
	logger *zap.SugaredLogger
	stats  tally.Scope

	mu          sync.Mutex
	connections []model.Connection
	watcher     *filewatch.Watcher

	connectionsChanged notify.Listeners[entity.ConnectionsChangedEvent]
	credentialsChanged notify.Listeners[entity.CredentialsChangedEvent]

	initProcessor initialization.Processor
}

// New returns a connection repository backed by the configured connections file.
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
		logger: p.Logger.With("component", "connection-repository"),
		stats:  p.Stats.SubScope("connection_repository"),
	}
	r.initProcessor = initialization.New(initialization.Params{
		Owner:      "connection-repository",
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

func (r *repository) GetAll(ctx context.Context) []entity.ServerConnection {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]entity.ServerConnection, 0, len(r.connections))
	for _, m := range r.connections {
		c, err := mapper.ModelToServerConnection(m)
		if err != nil {
			continue
		}
		result = append(result, c)
	}
	return result
}

func (r *repository) TryGet(ctx context.Context, id string) (entity.ServerConnection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.connections {
		if m.ID != id {
			continue
		}
		c, err := mapper.ModelToServerConnection(m)
		if err != nil {
			return entity.ServerConnection{}, false
		}
		return c, true
	}
	return entity.ServerConnection{}, false
}

func (r *repository) NotifyCredentialsChanged(ctx context.Context, id string) error {
	if _, ok := r.TryGet(ctx, id); !ok {
		return &errors.ConnectionNotFoundError{ID: id}
	}
	r.credentialsChanged.Notify(entity.CredentialsChangedEvent{ConnectionID: id})
	return nil
}

func (r *repository) SubscribeConnectionsChanged(fn func(entity.ConnectionsChangedEvent)) func() {
	return r.connectionsChanged.Subscribe(fn)
}

func (r *repository) SubscribeCredentialsChanged(fn func(entity.CredentialsChangedEvent)) func() {
	return r.credentialsChanged.Subscribe(fn)
}

func (r *repository) initialize(ctx context.Context) error {
	if err := r.fs.MkdirAll(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("creating connections directory: %w", err)
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

// reload re-reads the file and raises ConnectionsChanged if its contents differ from what was loaded before.
func (r *repository) reload() {
	changed, err := r.load()
	if err != nil {
		r.logger.Warnf("failed to reload connections: %v", err)
		return
	}
	if changed {
		r.logger.Info("connections changed")
		r.connectionsChanged.Notify(entity.ConnectionsChangedEvent{})
	}
}

func (r *repository) load() (changed bool, err error) {
	connections, err := r.read()
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	changed = !slices.Equal(r.connections, connections)
	r.connections = connections
	r.stats.Gauge("connections").Update(float64(len(connections)))
	return changed, nil
}

// read returns the valid connections of the file. A missing file holds no connections.
func (r *repository) read() ([]model.Connection, error) {
	exists, err := r.fs.FileExists(r.path)
	if err != nil {
		return nil, fmt.Errorf("checking connections file: %w", err)
	}
	if !exists {
		return nil, nil
	}

	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading connections file: %w", err)
	}

	var file model.ConnectionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing connections file: %w", err)
	}

	var (
		valid   []model.Connection
		invalid error
		seen    = make(map[string]struct{}, len(file.Connections))
	)
	// backendIDs maps a derived backend id to the local connection that claimed it first.
	backendIDs := make(map[string]string, len(file.Connections))
	for _, m := range file.Connections {
		conn, err := mapper.ModelToServerConnection(m)
		if err != nil {
			invalid = multierr.Append(invalid, err)
			continue
		}
		if _, dup := seen[m.ID]; dup {
			invalid = multierr.Append(invalid, fmt.Errorf("duplicate connection id %q", m.ID))
			continue
		}
		backendID := mapper.ConnectionID(conn)
		if owner, dup := backendIDs[backendID]; dup {
			invalid = multierr.Append(invalid, fmt.Errorf("connection %q targets the same server as %q", m.ID, owner))
			continue
		}
		seen[m.ID] = struct{}{}
		backendIDs[backendID] = m.ID
		valid = append(valid, m)
	}
	if invalid != nil {
		r.logger.Warnf("skipping invalid connections: %v", invalid)
	}
	return valid, nil
}
