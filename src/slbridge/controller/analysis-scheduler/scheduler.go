// Package analysisscheduler runs analyses on a bounded number of background workers.
package analysisscheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/controller/analyzer"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/factory"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	_configKeyWorkers = "analysis.workers"
	_defaultWorkers   = 2
)

var errStopped = errors.New("analysis scheduler is stopped")

// Controller schedules analyses. A newer request for a file cancels the pending or running analysis of that file.
type Controller interface {
	// Schedule queues the analysis of a file and returns its id without waiting for it.
	Schedule(ctx context.Context, params *entity.AnalyzeParams) (uuid.UUID, error)
	// Cancel cancels a queued or running analysis. Returns false if it is unknown or already done.
	Cancel(ctx context.Context, analysisID uuid.UUID) bool
	// CancelSession cancels every analysis requested by the IDE session.
	CancelSession(ctx context.Context, session uuid.UUID)
	// Stop cancels all analyses and waits for the workers to return.
	Stop()
}

// Params are inbound parameters to create a scheduler.
type Params struct {
	fx.In

	Analyzer  analyzer.Analyzer
	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type controller struct {
	analyzer analyzer.Analyzer
	logger   *zap.SugaredLogger
	stats    tally.Scope

	workers *semaphore.Weighted
	pending pendingStore

	mu      sync.Mutex
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a scheduler with the configured number of workers.
func New(p Params) (Controller, error) {
	workers := _defaultWorkers
	if err := p.Config.Get(_configKeyWorkers).Populate(&workers); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyWorkers, err)
	}
	if workers < 1 {
		return nil, fmt.Errorf("config field %q must be positive, got %d", _configKeyWorkers, workers)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &controller{
		analyzer: p.Analyzer,
		logger:   p.Logger.With("component", "analysis-scheduler"),
		stats:    p.Stats.SubScope("analysis_scheduler"),
		workers:  semaphore.NewWeighted(int64(workers)),
		ctx:      ctx,
		cancel:   cancel,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.Stop()
			return nil
		},
	})
	return c, nil
}

func (c *controller) Schedule(ctx context.Context, params *entity.AnalyzeParams) (uuid.UUID, error) {
	if params == nil || params.FileURI == "" {
		return uuid.Nil, errors.ErrParseParams
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return uuid.Nil, errStopped
	}

	id := factory.UUID()
	filePath := params.FileURI.Filename()

	// Analyses outlive the request that scheduled them but stay routed to its session.
	jobCtx, cancel := context.WithCancel(c.ctx)
	session, err := mapper.ContextToSessionUUID(ctx)
	if err == nil {
		jobCtx = mapper.SessionUUIDToContext(jobCtx, session)
	}

	if c.pending.set(filePath, pendingAnalysis{id: id, session: session, cancelFunc: cancel}) {
		c.stats.Counter("superseded").Inc(1)
	}
	c.stats.Counter("scheduled").Inc(1)

	languages := params.Languages
	options := entity.AnalyzerOptions{IsOnOpen: params.IsOnOpen, CreateReproducer: params.CreateReproducer}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		defer c.pending.finish(filePath, id)

		if err := c.workers.Acquire(jobCtx, 1); err != nil {
			c.logger.Debugw("analysis cancelled before it started", zap.String("file", filePath), zap.String("analysisId", id.String()))
			return
		}
		defer c.workers.Release(1)

		c.analyzer.ExecuteAnalysis(jobCtx, filePath, id, languages, options)
	}()

	return id, nil
}

func (c *controller) Cancel(ctx context.Context, analysisID uuid.UUID) bool {
	if !c.pending.cancel(analysisID) {
		return false
	}
	c.stats.Counter("cancelled").Inc(1)
	return true
}

func (c *controller) CancelSession(ctx context.Context, session uuid.UUID) {
	if n := c.pending.cleanSession(session); n > 0 {
		c.logger.Infof("cancelled %d analyses of closed session %s", n, session)
	}
}

func (c *controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()

	c.pending.cancelAll()
	c.cancel()
	c.wg.Wait()
}
