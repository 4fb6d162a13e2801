// Package controller groups the components that keep the backend in sync with the IDE.
package controller

import (
	analysisproperties "github.com/uber/slcore-bridge/src/slbridge/controller/analysis-properties"
	analysisscheduler "github.com/uber/slcore-bridge/src/slbridge/controller/analysis-scheduler"
	"github.com/uber/slcore-bridge/src/slbridge/controller/analyzer"
	configscope "github.com/uber/slcore-bridge/src/slbridge/controller/config-scope"
	"github.com/uber/slcore-bridge/src/slbridge/controller/connections"
	scopeupdater "github.com/uber/slcore-bridge/src/slbridge/controller/scope-updater"
	slcoreinstance "github.com/uber/slcore-bridge/src/slbridge/controller/slcore-instance"
	"github.com/uber/slcore-bridge/src/slbridge/internal/clock"
	"go.uber.org/fx"
)

// Module provides the controllers.
var Module = fx.Options(
	fx.Provide(clock.New),
	fx.Provide(configscope.New),
	fx.Provide(scopeupdater.New),
	fx.Provide(connections.New),
	fx.Provide(connections.NewServerConnectionsProvider),
	fx.Provide(analysisproperties.New),
	fx.Provide(analyzer.NewOutput),
	fx.Provide(analyzer.NewNotifierFactory),
	fx.Provide(analyzer.NewCompileDatabaseLocator),
	fx.Provide(analyzer.New),
	fx.Provide(analysisscheduler.New),
	fx.Provide(slcoreinstance.New),
)
