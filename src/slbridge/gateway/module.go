// Package gateway groups the outbound gateways of the bridge.
package gateway

import (
	ideclient "github.com/uber/slcore-bridge/src/slbridge/gateway/ide-client"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"go.uber.org/fx"
)

// Module provides the outbound gateways.
var Module = fx.Options(
	slcore.Module,
	fx.Provide(ideclient.New),
)
