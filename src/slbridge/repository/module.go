// Package repository groups the bridge's local state stores.
package repository

import (
	"github.com/uber/slcore-bridge/src/slbridge/repository/connection"
	"github.com/uber/slcore-bridge/src/slbridge/repository/settings"
	"github.com/uber/slcore-bridge/src/slbridge/repository/solution"
	"go.uber.org/fx"
)

// Module provides the repositories.
var Module = fx.Provide(
	connection.New,
	settings.New,
	solution.New,
)
