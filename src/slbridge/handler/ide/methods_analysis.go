package ide

import (
	"context"

	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Analyze schedules the analysis of a file and replies with its id. Progress is reported with status notifications.
func (r *jsonRPCRouter) Analyze(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToAnalyzeParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	id, err := r.h.scheduler.Schedule(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, &entity.AnalyzeResult{AnalysisID: id}, nil)
}

// CancelAnalysis replies true if a scheduled or running analysis was cancelled.
func (r *jsonRPCRouter) CancelAnalysis(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCancelAnalysisParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, r.h.scheduler.Cancel(ctx, params.AnalysisID), nil)
}
