// Package slcoreinstance brings the backend up to date whenever a connection to it is established.
package slcoreinstance

import (
	"context"
	"sync"

	tally "github.com/uber-go/tally/v4"
	analysisproperties "github.com/uber/slcore-bridge/src/slbridge/controller/analysis-properties"
	configscope "github.com/uber/slcore-bridge/src/slbridge/controller/config-scope"
	"github.com/uber/slcore-bridge/src/slbridge/controller/connections"
	scopeupdater "github.com/uber/slcore-bridge/src/slbridge/controller/scope-updater"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller tracks the lifetime of the backend connection.
type Controller interface {
	// IsAlive reports whether a backend connection is established.
	IsAlive() bool
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
}

// Params are inbound parameters to create the instance controller.
type Params struct {
	fx.In

	Connector    slcore.Connector
	Services     slcore.ServiceProvider
	Tracker      configscope.Controller
	Connections  connections.Controller
	Properties   analysisproperties.Controller
	ScopeUpdater scopeupdater.Controller
	Lifecycle    fx.Lifecycle
	Logger       *zap.SugaredLogger
	Stats        tally.Scope
}

type controller struct {
	services     slcore.ServiceProvider
	tracker      configscope.Controller
	connections  connections.Controller
	properties   analysisproperties.Controller
	scopeUpdater scopeupdater.Controller
	logger       *zap.SugaredLogger
	stats        tally.Scope

	unsubscribes []func()

	mu         sync.Mutex
	alive      bool
	cancelSync context.CancelFunc
	syncing    sync.WaitGroup
}

// New creates the instance controller and subscribes it to the backend connector.
func New(p Params) Controller {
	c := &controller{
		services:     p.Services,
		tracker:      p.Tracker,
		connections:  p.Connections,
		properties:   p.Properties,
		scopeUpdater: p.ScopeUpdater,
		logger:       p.Logger.With("component", "slcore-instance"),
		stats:        p.Stats.SubScope("slcore_instance"),
	}
	c.unsubscribes = []func(){
		p.Connector.SubscribeConnected(c.onConnected),
		p.Connector.SubscribeDisconnected(c.onDisconnected),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: c.OnStart,
		OnStop:  c.OnStop,
	})
	return c
}

func (c *controller) IsAlive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive
}

// OnStart initializes the components that follow local state, together with the repositories they depend on.
func (c *controller) OnStart(ctx context.Context) error {
	if err := c.connections.InitializationProcessor().Initialize(ctx); err != nil {
		c.logger.Errorf("failed to initialize connection tracking: %v", err)
	}
	if err := c.properties.InitializationProcessor().Initialize(ctx); err != nil {
		c.logger.Errorf("failed to initialize analysis properties synchronization: %v", err)
	}
	return nil
}

// OnStop stops following connection changes and waits for an in-flight synchronization.
func (c *controller) OnStop(ctx context.Context) error {
	for _, unsubscribe := range c.unsubscribes {
		unsubscribe()
	}
	c.stopSync()
	return nil
}

func (c *controller) onConnected(conn jsonrpc2.Conn) {
	slcore.RegisterServices(c.services, conn, c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.alive = true
	c.stats.Gauge("alive").Update(1)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelSync = cancel
	c.syncing.Add(1)
	go func() {
		defer c.syncing.Done()
		c.sync(ctx)
	}()
}

func (c *controller) onDisconnected() {
	c.stopSync()

	c.mu.Lock()
	c.alive = false
	c.mu.Unlock()

	c.services.Clear()
	c.tracker.Reset()
	c.stats.Gauge("alive").Update(0)
}

func (c *controller) stopSync() {
	c.mu.Lock()
	cancel := c.cancelSync
	c.cancelSync = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.syncing.Wait()
}

// sync pushes the local state to a freshly connected backend.
func (c *controller) sync(ctx context.Context) {
	if err := c.connections.InitializationProcessor().Wait(ctx); err != nil {
		c.logger.Warnf("connection tracking is not initialized: %v", err)
		return
	}

	if err := c.connections.RefreshConnectionList(ctx); err != nil {
		c.stats.Counter("sync_failures").Inc(1)
		c.logger.Errorf("failed to push connections to the backend: %v", err)
	}
	if err := c.scopeUpdater.UpdateConfigScopeForCurrentSolution(ctx); err != nil {
		c.stats.Counter("sync_failures").Inc(1)
		c.logger.Errorf("failed to declare the open solution to the backend: %v", err)
		return
	}
	c.logger.Info("backend synchronized")
}
