// Package connections mirrors the locally stored server connections to the backend.
package connections

import (
	"context"
	"fmt"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/asynclock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/initialization"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"github.com/uber/slcore-bridge/src/slbridge/repository/connection"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _serviceName = "ConnectionService"

// ServerConnectionsProvider derives the backend view of the local connections.
type ServerConnectionsProvider interface {
	GetServerConnections(ctx context.Context) (entity.ConnectionDescriptors, error)
}

// Controller is the alive connection tracker. Once initialized it re-pushes the connection list
// whenever the repository reports a change, and refreshes credentials of single connections.
type Controller interface {
	initialization.Initializable
	ServerConnectionsProvider

	// RefreshConnectionList replaces the backend connection list and refreshes the credentials of every connection.
	RefreshConnectionList(ctx context.Context) error
	// RefreshCredentials refreshes the credentials of the connection with the given local id.
	RefreshCredentials(ctx context.Context, localID string) error
	// Dispose unsubscribes from repository events. Safe to call more than once.
	Dispose()
}

// Params are inbound parameters to initialize a new connection tracker.
type Params struct {
	fx.In

	Services    slcore.ServiceProvider
	Connections connection.Repository
	Lifecycle   fx.Lifecycle
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

type controller struct {
	services    slcore.ServiceProvider
	connections connection.Repository
	logger      *zap.SugaredLogger
	stats       tally.Scope

	lock          *asynclock.Lock
	initProcessor initialization.Processor

	mu           sync.Mutex
	disposed     bool
	unsubscribes []func()

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a connection tracker. It starts reacting to repository events once initialized.
func New(p Params) Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &controller{
		services:    p.Services,
		connections: p.Connections,
		logger:      p.Logger.With("component", "connections"),
		stats:       p.Stats.SubScope("connections"),
		lock:        asynclock.New(),
		ctx:         ctx,
		cancel:      cancel,
	}
	c.initProcessor = initialization.New(initialization.Params{
		Owner:        "connections",
		Dependencies: []initialization.Initializable{p.Connections},
		Initialize:   c.initialize,
		Logger:       p.Logger,
	})

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.Dispose()
			return nil
		},
	})
	return c
}

// NewServerConnectionsProvider exposes the tracker as a ServerConnectionsProvider.
func NewServerConnectionsProvider(c Controller) ServerConnectionsProvider {
	return c
}

func (c *controller) InitializationProcessor() initialization.Processor {
	return c.initProcessor
}

func (c *controller) GetServerConnections(ctx context.Context) (entity.ConnectionDescriptors, error) {
	if err := c.connections.InitializationProcessor().Wait(ctx); err != nil {
		return entity.ConnectionDescriptors{}, fmt.Errorf("waiting for connection repository: %w", err)
	}
	return mapper.ServerConnectionsToDescriptors(c.connections.GetAll(ctx)), nil
}

func (c *controller) RefreshConnectionList(ctx context.Context) error {
	if err := threading.EnsureBackground(ctx, "RefreshConnectionList"); err != nil {
		return err
	}
	defer c.lock.Acquire().Release()

	svc, err := c.connectionService()
	if err != nil {
		return err
	}

	descriptors, err := c.GetServerConnections(ctx)
	if err != nil {
		return err
	}

	cloud, selfManaged := mapper.DescriptorsToConnectionDtos(descriptors)
	c.stats.Counter("connection_pushes").Inc(1)
	if err := svc.ReplaceConnections(ctx, cloud, selfManaged); err != nil {
		return fmt.Errorf("replacing connections: %w", err)
	}

	var errs error
	for _, id := range descriptors.ConnectionIDs() {
		if err := svc.RefreshCredentials(ctx, id); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("refreshing credentials of %q: %w", id, err))
		}
	}

	c.logger.Infow("connections pushed",
		zap.Int("selfManaged", len(selfManaged)),
		zap.Int("cloud", len(cloud)),
	)
	return errs
}

func (c *controller) RefreshCredentials(ctx context.Context, localID string) error {
	if err := threading.EnsureBackground(ctx, "RefreshCredentials"); err != nil {
		return err
	}
	defer c.lock.Acquire().Release()

	svc, err := c.connectionService()
	if err != nil {
		return err
	}

	conn, ok := c.connections.TryGet(ctx, localID)
	if !ok {
		return &errors.ConnectionNotFoundError{ID: localID}
	}

	id := mapper.ConnectionID(conn)
	if err := svc.RefreshCredentials(ctx, id); err != nil {
		return fmt.Errorf("refreshing credentials of %q: %w", id, err)
	}
	return nil
}

func (c *controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	unsubscribes := c.unsubscribes
	c.unsubscribes = nil
	c.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	c.cancel()
	c.wg.Wait()
}

func (c *controller) initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil
	}
	c.unsubscribes = append(c.unsubscribes,
		c.connections.SubscribeConnectionsChanged(c.onConnectionsChanged),
		c.connections.SubscribeCredentialsChanged(c.onCredentialsChanged),
	)
	return nil
}

func (c *controller) onConnectionsChanged(entity.ConnectionsChangedEvent) {
	c.background(func(ctx context.Context) error {
		return c.RefreshConnectionList(ctx)
	})
}

func (c *controller) onCredentialsChanged(event entity.CredentialsChangedEvent) {
	c.background(func(ctx context.Context) error {
		return c.RefreshCredentials(ctx, event.ConnectionID)
	})
}

// background runs fn off the notifying goroutine and logs its failure.
func (c *controller) background(fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := fn(c.ctx); err != nil {
			c.stats.Counter("push_failures").Inc(1)
			c.logger.Errorf("failed to push connection change to the backend: %v", err)
		}
	}()
}

func (c *controller) connectionService() (slcore.ConnectionService, error) {
	svc, ok := slcore.TryGetService[slcore.ConnectionService](c.services)
	if !ok {
		return nil, &errors.ServiceUnavailableError{Service: _serviceName}
	}
	return svc, nil
}
