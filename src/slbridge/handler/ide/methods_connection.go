package ide

import (
	"context"

	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ConnectionDidChangeCredentials is sent after the user stored a new token for a connection.
func (r *jsonRPCRouter) ConnectionDidChangeCredentials(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConnectionDidChangeCredentialsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.h.connections.NotifyCredentialsChanged(ctx, params.ConnectionID)
	return reply(ctx, nil, err)
}
