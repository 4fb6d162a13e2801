package ide

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

type jsonRPCRouter struct {
	h    *handler
	uuid uuid.UUID
}

// HandleReq handles routing for a single request.
// Requests are dispatched on the connection's read loop, so the context is marked as a dispatch context.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = mapper.SessionUUIDToContext(ctx, r.uuid)
	ctx = threading.WithUIThread(ctx)

	switch req.Method() {
	// Solution related methods.
	case entity.MethodSolutionDidOpen:
		return r.SolutionDidOpen(ctx, reply, req)

	case entity.MethodSolutionDidClose:
		return r.SolutionDidClose(ctx, reply, req)

	case entity.MethodSolutionDidChangeBinding:
		return r.SolutionDidChangeBinding(ctx, reply, req)

	// Connection related methods.
	case entity.MethodConnectionDidChangeCredentials:
		return r.ConnectionDidChangeCredentials(ctx, reply, req)

	// Analysis related methods.
	case entity.MethodAnalysisAnalyze:
		return r.Analyze(ctx, reply, req)

	case entity.MethodAnalysisCancel:
		return r.CancelAnalysis(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
