// Package analysisproperties pushes the user analysis properties of the active configuration scope to the backend.
package analysisproperties

import (
	"context"
	"sync"

	configscope "github.com/uber/slcore-bridge/src/slbridge/controller/config-scope"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/initialization"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/repository/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Controller is the user analysis properties synchronizer.
// It observes nothing until its initialization, which waits for the settings repository, has completed.
type Controller interface {
	initialization.Initializable

	// Dispose unsubscribes from all events. Safe to call more than once, and before initialization.
	Dispose()
}

// Params are inbound parameters to initialize a new synchronizer.
type Params struct {
	fx.In

	Services  slcore.ServiceProvider
	Tracker   configscope.Controller
	Settings  settings.Repository
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

type controller struct {
	services slcore.ServiceProvider
	tracker  configscope.Controller
	settings settings.Repository
	logger   *zap.SugaredLogger

	initProcessor initialization.Processor

	mu           sync.Mutex
	disposed     bool
	unsubscribes []func()

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a synchronizer. Call Initialize on its processor to start it.
func New(p Params) Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &controller{
		services: p.Services,
		tracker:  p.Tracker,
		settings: p.Settings,
		logger:   p.Logger.With("component", "analysis-properties"),
		ctx:      ctx,
		cancel:   cancel,
	}
	c.initProcessor = initialization.New(initialization.Params{
		Owner:        "analysis-properties",
		Dependencies: []initialization.Initializable{p.Settings},
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

func (c *controller) InitializationProcessor() initialization.Processor {
	return c.initProcessor
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
		c.logger.Debug("disposed before initialization, not subscribing")
		return nil
	}
	c.unsubscribes = append(c.unsubscribes,
		c.tracker.SubscribeScopeChanged(func(entity.ScopeChangedEvent) { c.schedulePush() }),
		c.settings.SubscribeSettingsChanged(func(entity.SettingsChangedEvent) { c.schedulePush() }),
	)
	return nil
}

// schedulePush hands the push off to a background goroutine so that notifying callers never block.
func (c *controller) schedulePush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}

	done := threading.RunOnBackground(c.ctx, c.push)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := <-done; err != nil {
			c.logger.Errorf("failed to push analysis properties: %v", err)
		}
	}()
}

func (c *controller) push(ctx context.Context) error {
	scope := c.tracker.Current(ctx)
	if scope == nil {
		return nil
	}

	properties := c.settings.AnalysisProperties(ctx, scope.ID)
	svc, ok := slcore.TryGetService[slcore.AnalysisPropertiesService](c.services)
	if !ok {
		c.logger.Debugf("analysis properties service unavailable, skipping push for %q", scope.ID)
		return nil
	}
	return svc.SetAnalysisProperties(ctx, scope.ID, properties)
}
