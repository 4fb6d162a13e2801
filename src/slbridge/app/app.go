package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/gateway"
	"github.com/uber/slcore-bridge/src/slbridge/handler"
	"github.com/uber/slcore-bridge/src/slbridge/internal/core"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"github.com/uber/slcore-bridge/src/slbridge/internal/jsonrpcfx"
	"github.com/uber/slcore-bridge/src/slbridge/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the slbridge application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "slbridge",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
