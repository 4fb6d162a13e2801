package filewatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "connections.yaml")

	changes := make(chan struct{}, 10)
	w, err := New(path, 10*time.Millisecond, func() { changes <- struct{}{} }, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, w.Start())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.yaml"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("connections: []"), 0644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("change was not reported")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second close should be a no-op")
}

func TestStartMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "file.yaml"), DefaultDebounce, func() {}, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Error(t, w.Start())
	assert.NoError(t, w.Close())
}
