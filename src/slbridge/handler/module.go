// Package handler groups the inbound JSON-RPC handlers of the bridge.
package handler

import (
	"github.com/uber/slcore-bridge/src/slbridge/controller"
	slcoreinstance "github.com/uber/slcore-bridge/src/slbridge/controller/slcore-instance"
	"github.com/uber/slcore-bridge/src/slbridge/handler/backend"
	"github.com/uber/slcore-bridge/src/slbridge/handler/ide"
	"github.com/uber/slcore-bridge/src/slbridge/repository"
	"go.uber.org/fx"
)

// Module provides the IDE and backend handlers into an Fx application.
var Module = fx.Options(
	controller.Module,
	repository.Module,
	fx.Provide(ide.New),
	fx.Provide(backend.New),
	fx.Invoke(func(h ide.Handler) {}),
	fx.Invoke(func(h backend.Handler) {}),
	fx.Invoke(func(c slcoreinstance.Controller) {}),
)
