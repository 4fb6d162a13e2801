// Package backend implements the JSON-RPC handler for requests sent by the analysis backend.
package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber-go/tally/v4"
	configscope "github.com/uber/slcore-bridge/src/slbridge/controller/config-scope"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Handler routes the requests of the backend connection.
type Handler interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
}

// Params are inbound parameters to create the backend handler.
type Params struct {
	fx.In

	Connector slcore.Connector
	Tracker   configscope.Controller
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type handler struct {
	tracker configscope.Controller
	logger  *zap.SugaredLogger
	stats   tally.Scope

	mu sync.Mutex
	// last is closed once the most recently received readiness change has been applied.
	last chan struct{}
	wg   sync.WaitGroup
}

// New creates the backend handler and installs it on the backend connector.
func New(p Params) (Handler, error) {
	h := &handler{
		tracker: p.Tracker,
		logger:  p.Logger.With("component", "backend-handler"),
		stats:   p.Stats.SubScope("backend"),
	}

	if err := p.Connector.SetHandler(h.HandleReq); err != nil {
		return nil, fmt.Errorf("installing backend handler: %w", err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			h.wg.Wait()
			return nil
		},
	})
	return h, nil
}

// HandleReq handles routing for a single backend request.
func (h *handler) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = threading.WithUIThread(ctx)

	switch req.Method() {
	case slcore.MethodDidChangeAnalysisReadiness:
		return h.DidChangeAnalysisReadiness(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

// DidChangeAnalysisReadiness replies immediately and applies the change in the background.
// Changes are applied in the order they were received.
func (h *handler) DidChangeAnalysisReadiness(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidChangeAnalysisReadinessParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	h.mu.Lock()
	prev := h.last
	done := make(chan struct{})
	h.last = done
	h.wg.Add(1)
	h.mu.Unlock()

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		defer h.wg.Done()
		defer close(done)
		if prev != nil {
			<-prev
		}

		err := <-threading.RunOnBackground(bgCtx, func(ctx context.Context) error {
			return h.applyReadiness(ctx, params)
		})
		if err != nil {
			h.stats.Counter("readiness_failures").Inc(1)
			h.logger.Errorf("updating analysis readiness: %v", err)
		}
	}()

	return reply(ctx, nil, nil)
}

func (h *handler) applyReadiness(ctx context.Context, params *slcore.DidChangeAnalysisReadinessParams) error {
	var errs error
	for _, id := range params.ConfigurationScopeIDs {
		updated, err := h.tracker.TryUpdateAnalysisReadinessOnCurrentConfigScope(ctx, id, params.AreReadyForAnalysis)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if !updated {
			h.logger.Debugf("readiness change for inactive scope %q ignored", id)
			continue
		}
		h.stats.Tagged(map[string]string{"ready": fmt.Sprint(params.AreReadyForAnalysis)}).Counter("readiness_updates").Inc(1)
	}
	return errs
}
