package configscope

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore"
	"github.com/uber/slcore-bridge/src/slbridge/gateway/slcore/slcoremock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/threading"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type events struct {
	mu     sync.Mutex
	values []entity.ScopeChangedEvent
}

func (e *events) record(ev entity.ScopeChangedEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values = append(e.values, ev)
}

func (e *events) get() []entity.ScopeChangedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]entity.ScopeChangedEvent(nil), e.values...)
}

func newController(t *testing.T) (Controller, *slcoremock.MockConfigurationScopeService, slcore.ServiceProvider, *events) {
	ctrl := gomock.NewController(t)
	svc := slcoremock.NewMockConfigurationScopeService(ctrl)
	services := slcore.NewServiceProvider()
	slcore.Register[slcore.ConfigurationScopeService](services, svc)

	c := New(Params{
		Services: services,
		Logger:   zap.NewNop().Sugar(),
		Stats:    tally.NewTestScope("", nil),
	})
	ev := &events{}
	c.SubscribeScopeChanged(ev.record)
	return c, svc, services, ev
}

func TestSetCurrentConfigScope(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	svc.EXPECT().AddScopes(gomock.Any(), []slcore.ConfigurationScopeDto{{
		ID:       "sln1",
		Name:     "sln1",
		Bindable: true,
		Binding:  slcore.BindingConfigurationDto{ConnectionID: "conn", SonarProjectKey: "proj"},
	}}).Return(nil)

	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "conn", "proj"))

	current := c.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, entity.ConfigurationScope{ID: "sln1", ConnectionID: "conn", SonarProjectID: "proj"}, *current)
	assert.Equal(t, []entity.ScopeChangedEvent{{DefinitionChanged: true}}, ev.get())
}

func TestSetCurrentConfigScopeRebind(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))
	updated, err := c.TryUpdateRootOnCurrentConfigScope(ctx, "sln1", "/root", "/base")
	require.NoError(t, err)
	require.True(t, updated)
	updated, err = c.TryUpdateAnalysisReadinessOnCurrentConfigScope(ctx, "sln1", true)
	require.NoError(t, err)
	require.True(t, updated)

	svc.EXPECT().UpdateBinding(gomock.Any(), "sln1", slcore.BindingConfigurationDto{ConnectionID: "conn", SonarProjectKey: "proj"}).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "conn", "proj"))

	current := c.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, entity.ConfigurationScope{
		ID:                 "sln1",
		ConnectionID:       "conn",
		SonarProjectID:     "proj",
		RootPath:           "/root",
		BaseDir:            "/base",
		IsReadyForAnalysis: true,
	}, *current, "rebinding keeps root and readiness")
	assert.Equal(t, []entity.ScopeChangedEvent{
		{DefinitionChanged: true},
		{DefinitionChanged: false},
		{DefinitionChanged: false},
		{DefinitionChanged: true},
	}, ev.get())
}

func TestSetCurrentConfigScopeConflict(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))

	err := c.SetCurrentConfigScope(ctx, "sln2", "", "")
	current, requested, ok := errors.ScopeConflict(err)
	require.True(t, ok)
	assert.Equal(t, "sln1", current)
	assert.Equal(t, "sln2", requested)
	assert.Equal(t, "sln1", c.Current(ctx).ID)
	assert.Len(t, ev.get(), 1)
}

func TestSetCurrentConfigScopeBackendFailure(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(errors.New("connection lost"))
	assert.ErrorContains(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""), "connection lost")
	assert.Nil(t, c.Current(ctx))
	assert.Empty(t, ev.get())

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))
	svc.EXPECT().UpdateBinding(gomock.Any(), "sln1", gomock.Any()).Return(errors.New("timeout"))
	assert.Error(t, c.SetCurrentConfigScope(ctx, "sln1", "conn", "proj"))
	assert.False(t, c.Current(ctx).IsBound(), "failed rebind leaves the previous binding")
}

func TestServiceUnavailable(t *testing.T) {
	ctx := context.Background()
	c, svc, services, ev := newController(t)

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))
	services.Clear()

	assert.True(t, errors.IsServiceUnavailable(c.SetCurrentConfigScope(ctx, "sln1", "conn", "proj")))
	assert.True(t, errors.IsServiceUnavailable(c.RemoveCurrentConfigScope(ctx)))
	assert.NotNil(t, c.Current(ctx))
	assert.Len(t, ev.get(), 1)
}

func TestRemoveCurrentConfigScope(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	require.NoError(t, c.RemoveCurrentConfigScope(ctx), "removing without an active scope")
	assert.Empty(t, ev.get())

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))
	svc.EXPECT().RemoveScope(gomock.Any(), "sln1").Return(nil)
	require.NoError(t, c.RemoveCurrentConfigScope(ctx))
	assert.Nil(t, c.Current(ctx))

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln2", "", ""), "a different scope may follow a removal")
	assert.Equal(t, []entity.ScopeChangedEvent{
		{DefinitionChanged: true},
		{DefinitionChanged: true},
		{DefinitionChanged: true},
	}, ev.get())
}

func TestTryUpdateMismatch(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	updated, err := c.TryUpdateRootOnCurrentConfigScope(ctx, "sln1", "/root", "/root")
	require.NoError(t, err)
	assert.False(t, updated)

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))

	updated, err = c.TryUpdateRootOnCurrentConfigScope(ctx, "other", "/root", "/root")
	require.NoError(t, err)
	assert.False(t, updated)
	updated, err = c.TryUpdateAnalysisReadinessOnCurrentConfigScope(ctx, "other", true)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Empty(t, c.Current(ctx).RootPath)
	assert.Len(t, ev.get(), 1)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	c, svc, _, ev := newController(t)

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))

	c.Reset()
	assert.Nil(t, c.Current(ctx))
	assert.Len(t, ev.get(), 1, "reset raises no event")

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""), "the same scope is declared again after a reset")
}

func TestRejectsDispatchContext(t *testing.T) {
	ctx := threading.WithUIThread(context.Background())
	c, _, _, ev := newController(t)

	assert.True(t, errors.IsUIThread(c.SetCurrentConfigScope(ctx, "sln1", "", "")))
	assert.True(t, errors.IsUIThread(c.RemoveCurrentConfigScope(ctx)))
	_, err := c.TryUpdateRootOnCurrentConfigScope(ctx, "sln1", "/root", "/root")
	assert.True(t, errors.IsUIThread(err))
	_, err = c.TryUpdateAnalysisReadinessOnCurrentConfigScope(ctx, "sln1", true)
	assert.True(t, errors.IsUIThread(err))
	assert.Empty(t, ev.get())
}

func TestMissingScopeID(t *testing.T) {
	c, _, _, _ := newController(t)
	assert.ErrorIs(t, c.SetCurrentConfigScope(context.Background(), "", "", ""), errors.ErrMissingScopeID)
}

func TestSerializesTransitions(t *testing.T) {
	ctx := context.Background()
	c, svc, _, _ := newController(t)

	release := make(chan struct{})
	entered := make(chan struct{})
	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []slcore.ConfigurationScopeDto) error {
		close(entered)
		<-release
		return nil
	})

	setDone := threading.RunOnBackground(ctx, func(ctx context.Context) error {
		return c.SetCurrentConfigScope(ctx, "sln1", "", "")
	})
	<-entered

	readDone := make(chan *entity.ConfigurationScope)
	go func() { readDone <- c.Current(ctx) }()

	select {
	case <-readDone:
		t.Fatal("read completed while a transition was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-setDone)
	current := <-readDone
	require.NotNil(t, current)
	assert.Equal(t, "sln1", current.ID)
}

func TestListenerCanReadCurrent(t *testing.T) {
	ctx := context.Background()
	c, svc, _, _ := newController(t)

	var seen *entity.ConfigurationScope
	c.SubscribeScopeChanged(func(entity.ScopeChangedEvent) {
		seen = c.Current(ctx)
	})

	svc.EXPECT().AddScopes(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.SetCurrentConfigScope(ctx, "sln1", "", ""))
	require.NotNil(t, seen)
	assert.Equal(t, "sln1", seen.ID)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
