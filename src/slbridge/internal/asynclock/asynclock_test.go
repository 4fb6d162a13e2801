package asynclock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestAcquire(t *testing.T) {
	l := New()
	r := l.Acquire()

	_, ok := l.TryAcquire()
	assert.False(t, ok)

	r.Release()
	r2, ok := l.TryAcquire()
	require.True(t, ok)
	r2.Release()
}

func TestReleaseIsIdempotent(t *testing.T) {
	l := New()
	r := l.Acquire()
	r.Release()
	assert.NotPanics(t, r.Release)

	// A second release must not free a lock held by someone else.
	held := l.Acquire()
	r.Release()
	_, ok := l.TryAcquire()
	assert.False(t, ok)
	held.Release()
}

func TestAcquireContext(t *testing.T) {
	t.Run("acquires when free", func(t *testing.T) {
		l := New()
		r, err := l.AcquireContext(context.Background())
		require.NoError(t, err)
		r.Release()
	})

	t.Run("returns error when cancelled", func(t *testing.T) {
		l := New()
		held := l.Acquire()
		defer held.Release()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		r, err := l.AcquireContext(ctx)
		assert.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestMutualExclusion(t *testing.T) {
	l := New()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer l.Acquire().Release()
			current := counter
			time.Sleep(time.Microsecond)
			counter = current + 1
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
