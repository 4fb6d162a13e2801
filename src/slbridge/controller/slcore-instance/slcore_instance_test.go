package slcoreinstance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/idl/mock/jsonrpc2mock"
	"github.com/uber/slcore-bridge/src/slbridge/controller/analysis-properties/analysispropertiesmock"
	"github.com/uber/slcore-bridge/src/slbridge/controller/config-scope/configscopemock"
	"github.com/uber/slcore-bridge/src/slbridge/controller/connections/connectionsmock"
	"github.com/uber/slcore-bridge/src/slbridge/controller/scope-updater/scopeupdatermock"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore/slcoremock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/initialization"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	controller   Controller
	ctrl         *gomock.Controller
	lc           *fxtest.Lifecycle
	services     slcore.ServiceProvider
	tracker      *configscopemock.MockController
	connections  *connectionsmock.MockController
	properties   *analysispropertiesmock.MockController
	scopeUpdater *scopeupdatermock.MockController
	stats        tally.TestScope

	onConnected    func(jsonrpc2.Conn)
	onDisconnected func()
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:         ctrl,
		lc:           fxtest.NewLifecycle(t),
		services:     slcore.NewServiceProvider(),
		tracker:      configscopemock.NewMockController(ctrl),
		connections:  connectionsmock.NewMockController(ctrl),
		properties:   analysispropertiesmock.NewMockController(ctrl),
		scopeUpdater: scopeupdatermock.NewMockController(ctrl),
		stats:        tally.NewTestScope("", nil),
	}

	connector := slcoremock.NewMockConnector(ctrl)
	connector.EXPECT().SubscribeConnected(gomock.Any()).DoAndReturn(func(fn func(jsonrpc2.Conn)) func() {
		f.onConnected = fn
		return func() {}
	})
	connector.EXPECT().SubscribeDisconnected(gomock.Any()).DoAndReturn(func(fn func()) func() {
		f.onDisconnected = fn
		return func() {}
	})

	f.controller = New(Params{
		Connector:    connector,
		Services:     f.services,
		Tracker:      f.tracker,
		Connections:  f.connections,
		Properties:   f.properties,
		ScopeUpdater: f.scopeUpdater,
		Lifecycle:    f.lc,
		Logger:       zap.NewNop().Sugar(),
		Stats:        f.stats,
	})
	return f
}

func initializedProcessor(t *testing.T, owner string) initialization.Processor {
	p := initialization.New(initialization.Params{Owner: owner})
	require.NoError(t, p.Initialize(context.Background()))
	return p
}

func TestOnStartInitializesComponents(t *testing.T) {
	f := newFixture(t)
	connectionsProcessor := initialization.New(initialization.Params{Owner: "connections"})
	propertiesProcessor := initialization.New(initialization.Params{
		Owner: "analysis-properties",
		Initialize: func(context.Context) error {
			return errors.New("settings file is unreadable")
		},
	})
	f.connections.EXPECT().InitializationProcessor().Return(connectionsProcessor).AnyTimes()
	f.properties.EXPECT().InitializationProcessor().Return(propertiesProcessor).AnyTimes()

	f.lc.RequireStart()
	assert.True(t, connectionsProcessor.IsFinalized())
	assert.True(t, propertiesProcessor.IsFinalized(), "a failing component does not prevent startup")
	f.lc.RequireStop()
}

func TestConnectAndDisconnect(t *testing.T) {
	f := newFixture(t)
	f.connections.EXPECT().InitializationProcessor().Return(initializedProcessor(t, "connections")).AnyTimes()
	f.properties.EXPECT().InitializationProcessor().Return(initializedProcessor(t, "analysis-properties")).AnyTimes()
	f.lc.RequireStart()
	defer f.lc.RequireStop()

	synced := make(chan struct{})
	gomock.InOrder(
		f.connections.EXPECT().RefreshConnectionList(gomock.Any()).Return(nil),
		f.scopeUpdater.EXPECT().UpdateConfigScopeForCurrentSolution(gomock.Any()).DoAndReturn(func(context.Context) error {
			close(synced)
			return nil
		}),
	)

	f.onConnected(jsonrpc2mock.NewMockConn(f.ctrl))
	<-synced
	assert.True(t, f.controller.IsAlive())
	_, ok := slcore.TryGetService[slcore.ConfigurationScopeService](f.services)
	assert.True(t, ok, "services are registered on connect")
	_, ok = slcore.TryGetService[slcore.AnalysisService](f.services)
	assert.True(t, ok)

	f.tracker.EXPECT().Reset()
	f.onDisconnected()
	assert.False(t, f.controller.IsAlive())
	_, ok = slcore.TryGetService[slcore.ConfigurationScopeService](f.services)
	assert.False(t, ok, "services are cleared on disconnect")
	assert.Equal(t, float64(0), f.stats.Snapshot().Gauges()["slcore_instance.alive+"].Value())
}

func TestSyncFailures(t *testing.T) {
	f := newFixture(t)
	f.connections.EXPECT().InitializationProcessor().Return(initializedProcessor(t, "connections")).AnyTimes()
	f.properties.EXPECT().InitializationProcessor().Return(initializedProcessor(t, "analysis-properties")).AnyTimes()
	f.lc.RequireStart()

	synced := make(chan struct{})
	f.connections.EXPECT().RefreshConnectionList(gomock.Any()).Return(errors.New("replace failed"))
	f.scopeUpdater.EXPECT().UpdateConfigScopeForCurrentSolution(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(synced)
		return &errors.ServiceUnavailableError{Service: "ConfigurationScopeService"}
	})

	f.onConnected(jsonrpc2mock.NewMockConn(f.ctrl))
	<-synced
	f.lc.RequireStop()
	assert.Equal(t, int64(2), f.stats.Snapshot().Counters()["slcore_instance.sync_failures+"].Value())
}

func TestDisconnectCancelsSync(t *testing.T) {
	f := newFixture(t)
	f.connections.EXPECT().InitializationProcessor().Return(initializedProcessor(t, "connections")).AnyTimes()
	f.properties.EXPECT().InitializationProcessor().Return(initializedProcessor(t, "analysis-properties")).AnyTimes()
	f.lc.RequireStart()
	defer f.lc.RequireStop()

	entered := make(chan struct{})
	f.connections.EXPECT().RefreshConnectionList(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(entered)
		<-ctx.Done()
		return ctx.Err()
	})
	f.scopeUpdater.EXPECT().UpdateConfigScopeForCurrentSolution(gomock.Any()).Return(context.Canceled)

	f.onConnected(jsonrpc2mock.NewMockConn(f.ctrl))
	<-entered

	f.tracker.EXPECT().Reset()
	f.onDisconnected()
	assert.False(t, f.controller.IsAlive())
}
