package connection

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const _connectionsYAML = `
connections:
  - id: local
    serverUrl: http://localhost:9000
  - id: cloud
    organization: my-org
    region: US
  - id: broken
  - id: local
    serverUrl: http://duplicate:9000
`

func newTestRepository(t *testing.T, path string) (*repository, *fxtest.Lifecycle) {
	provider, err := config.NewYAML(config.Source(strings.NewReader(fmt.Sprintf("repositories:\n  connectionsPath: %s\n", path))))
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	r, err := New(Params{
		Config:    provider,
		FS:        fs.New(),
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("", nil),
	})
	require.NoError(t, err)
	lc.RequireStart()
	return r.(*repository), lc
}

func TestNew(t *testing.T) {
	provider, err := config.NewYAML(config.Source(strings.NewReader("repositories: {}\n")))
	require.NoError(t, err)

	_, err = New(Params{
		Config:    provider,
		FS:        fs.New(),
		Lifecycle: fxtest.NewLifecycle(t),
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
	})
	assert.Error(t, err)
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "config", "connections.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(_connectionsYAML), 0644))

	r, lc := newTestRepository(t, path)
	assert.Empty(t, r.GetAll(ctx), "nothing is loaded before initialization")

	require.NoError(t, r.InitializationProcessor().Initialize(ctx))
	defer lc.RequireStop()

	t.Run("invalid and duplicate entries are skipped", func(t *testing.T) {
		all := r.GetAll(ctx)
		require.Len(t, all, 2)
		assert.Equal(t, "local", all[0].ID)
		assert.Equal(t, "http://localhost:9000", all[0].ServerURL)
		assert.Equal(t, entity.ConnectionKindCloud, all[1].Kind)
	})

	t.Run("try get", func(t *testing.T) {
		c, ok := r.TryGet(ctx, "cloud")
		assert.True(t, ok)
		assert.Equal(t, entity.CloudRegionUS, c.Region)

		_, ok = r.TryGet(ctx, "broken")
		assert.False(t, ok)
	})

	t.Run("credentials changed", func(t *testing.T) {
		var events []entity.CredentialsChangedEvent
		unsubscribe := r.SubscribeCredentialsChanged(func(e entity.CredentialsChangedEvent) { events = append(events, e) })
		defer unsubscribe()

		require.NoError(t, r.NotifyCredentialsChanged(ctx, "local"))
		err := r.NotifyCredentialsChanged(ctx, "unknown")
		var notFound *errors.ConnectionNotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, []entity.CredentialsChangedEvent{{ConnectionID: "local"}}, events)
	})

	t.Run("file change raises connections changed", func(t *testing.T) {
		changed := make(chan struct{}, 10)
		unsubscribe := r.SubscribeConnectionsChanged(func(entity.ConnectionsChangedEvent) { changed <- struct{}{} })
		defer unsubscribe()

		require.NoError(t, os.WriteFile(path, []byte("connections:\n  - id: other\n    serverUrl: http://other\n"), 0644))
		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			t.Fatal("connections change was not reported")
		}

		all := r.GetAll(ctx)
		require.Len(t, all, 1)
		assert.Equal(t, "other", all[0].ID)
	})
}

func TestConnectionsToSameServer(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "connections.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
connections:
  - id: first
    serverUrl: https://sonar.example.com
  - id: second
    serverUrl: https://SONAR.example.com/
  - id: cloud
    organization: my-org
  - id: cloud-eu
    organization: my-org
    region: EU
`), 0644))

	r, lc := newTestRepository(t, path)
	require.NoError(t, r.InitializationProcessor().Initialize(ctx))
	defer lc.RequireStop()

	all := r.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].ID)
	assert.Equal(t, "cloud", all[1].ID)

	_, ok := r.TryGet(ctx, "second")
	assert.False(t, ok)
}

func TestMissingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "connections.yaml")
	r, lc := newTestRepository(t, path)

	require.NoError(t, r.InitializationProcessor().Initialize(ctx))
	defer lc.RequireStop()

	assert.Empty(t, r.GetAll(ctx))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connections: [ {"), 0644))
	r, _ := newTestRepository(t, path)

	assert.Error(t, r.InitializationProcessor().Initialize(context.Background()))
	assert.True(t, r.InitializationProcessor().IsFinalized())
}
