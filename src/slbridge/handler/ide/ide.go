// Package ide implements the JSON-RPC handlers for IDE connections.
package ide

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally/v4"
	analysisscheduler "github.com/uber/slcore-bridge/src/slbridge/controller/analysis-scheduler"
	scopeupdater "github.com/uber/slcore-bridge/src/slbridge/controller/scope-updater"
	"github.com/uber/slcore-bridge/src/slbridge/factory"
	ideclient "github.com/uber/slcore-bridge/src/slbridge/gateway/ide-client"
	"github.com/uber/slcore-bridge/src/slbridge/internal/jsonrpcfx"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"github.com/uber/slcore-bridge/src/slbridge/repository/connection"
	"github.com/uber/slcore-bridge/src/slbridge/repository/solution"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler accepts IDE connections and routes their requests.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

// Params are inbound parameters to create the IDE handler.
type Params struct {
	fx.In

	JSONRPCModule jsonrpcfx.JSONRPCModule
	IdeGateway    ideclient.Gateway
	Solutions     solution.Repository
	Connections   connection.Repository
	ScopeUpdater  scopeupdater.Controller
	Scheduler     analysisscheduler.Controller
	Lifecycle     fx.Lifecycle
	Logger        *zap.SugaredLogger
	Stats         tally.Scope
}

type handler struct {
	ideGateway   ideclient.Gateway
	solutions    solution.Repository
	connections  connection.Repository
	scopeUpdater scopeupdater.Controller
	scheduler    analysisscheduler.Controller
	logger       *zap.SugaredLogger
	stats        tally.Scope

	wg sync.WaitGroup
}

// New creates the IDE handler and registers it as the connection manager of the JSON-RPC module.
func New(p Params) (Handler, error) {
	h := &handler{
		ideGateway:   p.IdeGateway,
		solutions:    p.Solutions,
		connections:  p.Connections,
		scopeUpdater: p.ScopeUpdater,
		scheduler:    p.Scheduler,
		logger:       p.Logger.With("component", "ide-handler"),
		stats:        p.Stats.SubScope("ide"),
	}

	if err := p.JSONRPCModule.RegisterConnectionManager(h); err != nil {
		return nil, fmt.Errorf("registering IDE connection manager: %w", err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			h.wait()
			return nil
		},
	})
	return h, nil
}

// NewConnection registers the connection with the IDE gateway and returns a router bound to a new session.
func (h *handler) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id := factory.UUID()
	if err := h.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	h.stats.Counter("sessions_opened").Inc(1)

	return &jsonRPCRouter{
		h:    h,
		uuid: id,
	}, nil
}

// RemoveConnection cleans up everything owned by a closed session.
func (h *handler) RemoveConnection(ctx context.Context, id uuid.UUID) {
	ctx = mapper.SessionUUIDToContext(context.WithoutCancel(ctx), id)

	if err := h.ideGateway.DeregisterClient(ctx, id); err != nil {
		h.logger.Warnw("deregistering IDE client", zap.String("session", id.String()), zap.Error(err))
	}
	h.scheduler.CancelSession(ctx, id)

	if h.solutions.CloseSession(ctx, id) {
		h.logger.Infof("solution closed with its session %s", id)
		h.updateScope(ctx)
	}
	h.stats.Counter("sessions_closed").Inc(1)
}

// updateScope re-declares the open solution to the backend without blocking the caller.
func (h *handler) updateScope(ctx context.Context) {
	done := threading.RunOnBackground(context.WithoutCancel(ctx), h.scopeUpdater.UpdateConfigScopeForCurrentSolution)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if err := <-done; err != nil {
			h.stats.Counter("scope_update_failures").Inc(1)
			h.logger.Errorf("updating configuration scope: %v", err)
		}
	}()
}

// wait blocks until all scope updates started so far have finished.
func (h *handler) wait() {
	h.wg.Wait()
}
