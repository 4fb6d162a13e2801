// Package ideclient sends notifications from the bridge to connected IDE sessions.
package ideclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _errSendToClient = "sending notification to IDE: %w"

// Gateway is used to send outbound notifications to the IDE.
// A context carrying a session UUID routes to that session only; any other context is broadcast to every session.
type Gateway interface {
	// RegisterClient registers a new client. Called each time a new IDE connection is accepted.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a client. Called each time an IDE connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
	// AnalysisStatus reports the progress of an analysis.
	AnalysisStatus(ctx context.Context, params *entity.AnalysisStatusParams) error
}

type session struct {
	client protocol.Client
	conn   jsonrpc2.Conn
}

type gateway struct {
	sessions   map[uuid.UUID]session
	sessionsMu sync.Mutex
	logger     *zap.Logger
}

// New returns a Gateway for sending IDE notifications.
func New(logger *zap.Logger) Gateway {
	return &gateway{
		sessions: make(map[uuid.UUID]session),
		logger:   logger,
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.sessionsMu.Lock()
	defer g.sessionsMu.Unlock()

	g.sessions[id] = session{
		client: protocol.ClientDispatcher(*conn, g.logger),
		conn:   *conn,
	}
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.sessionsMu.Lock()
	defer g.sessionsMu.Unlock()

	delete(g.sessions, id)
	return nil
}

func (g *gateway) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	return g.each(ctx, func(s session) error {
		return s.client.LogMessage(ctx, params)
	})
}

func (g *gateway) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	return g.each(ctx, func(s session) error {
		return s.client.ShowMessage(ctx, params)
	})
}

func (g *gateway) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	return g.each(ctx, func(s session) error {
		return s.client.PublishDiagnostics(ctx, params)
	})
}

func (g *gateway) AnalysisStatus(ctx context.Context, params *entity.AnalysisStatusParams) error {
	return g.each(ctx, func(s session) error {
		return s.conn.Notify(ctx, entity.MethodAnalysisDidChangeStatus, params)
	})
}

// each runs send for the session in ctx, or for all sessions when ctx carries none.
func (g *gateway) each(ctx context.Context, send func(s session) error) error {
	targets, err := g.targets(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToClient, err)
	}

	var errs error
	for _, s := range targets {
		errs = multierr.Append(errs, send(s))
	}
	if errs != nil {
		return fmt.Errorf(_errSendToClient, errs)
	}
	return nil
}

func (g *gateway) targets(ctx context.Context) ([]session, error) {
	g.sessionsMu.Lock()
	defer g.sessionsMu.Unlock()

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		all := make([]session, 0, len(g.sessions))
		for _, s := range g.sessions {
			all = append(all, s)
		}
		return all, nil
	}

	s, ok := g.sessions[id]
	if !ok {
		return nil, fmt.Errorf("client with id %q not found", id)
	}
	return []session{s}, nil
}
