package slcore

import "go.uber.org/fx"

// Module provides the backend gateway.
var Module = fx.Options(
	fx.Provide(NewServiceProvider),
	fx.Provide(NewConnector),
)
