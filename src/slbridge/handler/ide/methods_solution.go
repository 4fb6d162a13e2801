package ide

import (
	"context"

	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

// SolutionDidOpen replaces the open solution and re-declares it to the backend.
func (r *jsonRPCRouter) SolutionDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSolutionDidOpenParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	if err := r.h.solutions.Open(ctx, mapper.SolutionDidOpenParamsToSolution(params)); err != nil {
		return reply(ctx, nil, err)
	}

	r.h.updateScope(ctx)
	return reply(ctx, nil, nil)
}

func (r *jsonRPCRouter) SolutionDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if r.h.solutions.Close(ctx) {
		r.h.updateScope(ctx)
	}
	return reply(ctx, nil, nil)
}

// SolutionDidChangeBinding rebinds or unbinds the open solution.
func (r *jsonRPCRouter) SolutionDidChangeBinding(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSolutionDidChangeBindingParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	if err := r.h.solutions.SetBinding(ctx, params.Binding); err != nil {
		return reply(ctx, nil, err)
	}

	r.h.updateScope(ctx)
	return reply(ctx, nil, nil)
}
