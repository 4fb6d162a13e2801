package analysisscheduler

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/controller/analyzer/analyzermock"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/factory"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/mapper"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const _file = "/home/user/sln1/main.cpp"

func newScheduler(t *testing.T, workers int) (Controller, *analyzermock.MockAnalyzer, tally.TestScope) {
	ctrl := gomock.NewController(t)
	a := analyzermock.NewMockAnalyzer(ctrl)
	provider, err := config.NewYAML(config.Source(strings.NewReader(fmt.Sprintf("analysis:\n  workers: %d\n", workers))))
	require.NoError(t, err)
	stats := tally.NewTestScope("", nil)

	lc := fxtest.NewLifecycle(t)
	c, err := New(Params{
		Analyzer:  a,
		Config:    provider,
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
		Stats:     stats,
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)
	return c, a, stats
}

func TestNewInvalidWorkers(t *testing.T) {
	provider, err := config.NewYAML(config.Source(strings.NewReader("analysis:\n  workers: 0\n")))
	require.NoError(t, err)
	_, err = New(Params{
		Config:    provider,
		Lifecycle: fxtest.NewLifecycle(t),
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
	})
	assert.Error(t, err)
}

func TestSchedule(t *testing.T) {
	c, a, _ := newScheduler(t, 2)
	session := factory.UUID()
	ctx := mapper.SessionUUIDToContext(context.Background(), session)

	done := make(chan struct{})
	var gotID uuid.UUID
	a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), entity.AnalysisLanguages{entity.AnalysisLanguageCFamily}, entity.AnalyzerOptions{IsOnOpen: true}).
		Do(func(ctx context.Context, _ string, id uuid.UUID, _ entity.AnalysisLanguages, _ entity.AnalyzerOptions) {
			gotID = id
			s, err := mapper.ContextToSessionUUID(ctx)
			assert.NoError(t, err)
			assert.Equal(t, session, s)
			close(done)
		})

	id, err := c.Schedule(ctx, &entity.AnalyzeParams{
		FileURI:   uri.File(_file),
		Languages: entity.AnalysisLanguages{entity.AnalysisLanguageCFamily},
		IsOnOpen:  true,
	})
	require.NoError(t, err)
	<-done
	assert.Equal(t, id, gotID)
}

func TestScheduleInvalid(t *testing.T) {
	c, _, _ := newScheduler(t, 1)
	_, err := c.Schedule(context.Background(), &entity.AnalyzeParams{})
	assert.True(t, errors.IsBadRequest(err))
}

func TestScheduleSupersedes(t *testing.T) {
	c, a, stats := newScheduler(t, 2)
	ctx := context.Background()

	firstStarted := make(chan struct{})
	firstCancelled := make(chan struct{})
	secondDone := make(chan struct{})
	gomock.InOrder(
		a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, _ string, _ uuid.UUID, _ entity.AnalysisLanguages, _ entity.AnalyzerOptions) {
				close(firstStarted)
				<-ctx.Done()
				close(firstCancelled)
			}),
		a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(ctx context.Context, _ string, _ uuid.UUID, _ entity.AnalysisLanguages, _ entity.AnalyzerOptions) {
				assert.NoError(t, ctx.Err())
				close(secondDone)
			}),
	)

	_, err := c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	require.NoError(t, err)
	<-firstStarted

	_, err = c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	require.NoError(t, err)
	<-firstCancelled
	<-secondDone
	assert.Equal(t, int64(1), stats.Snapshot().Counters()["analysis_scheduler.superseded+"].Value())
}

func TestCancel(t *testing.T) {
	c, a, _ := newScheduler(t, 1)
	ctx := context.Background()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, _ string, _ uuid.UUID, _ entity.AnalysisLanguages, _ entity.AnalyzerOptions) {
			close(started)
			<-ctx.Done()
			close(cancelled)
		})

	id, err := c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	require.NoError(t, err)
	<-started

	assert.True(t, c.Cancel(ctx, id))
	<-cancelled
	assert.False(t, c.Cancel(ctx, id), "already cancelled")
	assert.False(t, c.Cancel(ctx, factory.UUID()), "unknown analysis")
}

func TestQueuedAnalysisCancelledBeforeStart(t *testing.T) {
	c, a, _ := newScheduler(t, 1)
	ctx := context.Background()
	other := "/home/user/sln1/other.cpp"

	started := make(chan struct{})
	release := make(chan struct{})
	a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(context.Context, string, uuid.UUID, entity.AnalysisLanguages, entity.AnalyzerOptions) {
			close(started)
			<-release
		})

	_, err := c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	require.NoError(t, err)
	<-started

	queued, err := c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(other)})
	require.NoError(t, err)
	assert.True(t, c.Cancel(ctx, queued))
	close(release)
}

func TestCancelSession(t *testing.T) {
	c, a, _ := newScheduler(t, 1)
	session := factory.UUID()
	ctx := mapper.SessionUUIDToContext(context.Background(), session)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, _ string, _ uuid.UUID, _ entity.AnalysisLanguages, _ entity.AnalyzerOptions) {
			close(started)
			<-ctx.Done()
			close(cancelled)
		})

	_, err := c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	require.NoError(t, err)
	<-started

	c.CancelSession(context.Background(), factory.UUID())
	select {
	case <-cancelled:
		t.Fatal("analysis of another session was cancelled")
	case <-time.After(20 * time.Millisecond):
	}

	c.CancelSession(context.Background(), session)
	<-cancelled
}

func TestStop(t *testing.T) {
	c, a, _ := newScheduler(t, 1)
	ctx := context.Background()

	started := make(chan struct{})
	a.EXPECT().ExecuteAnalysis(gomock.Any(), _file, gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, _ string, _ uuid.UUID, _ entity.AnalysisLanguages, _ entity.AnalyzerOptions) {
			close(started)
			<-ctx.Done()
		})

	_, err := c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	require.NoError(t, err)
	<-started

	c.Stop()
	_, err = c.Schedule(ctx, &entity.AnalyzeParams{FileURI: uri.File(_file)})
	assert.ErrorIs(t, err, errStopped)
}
