// Package asynclock provides a mutual exclusion lock that can be acquired either blocking or with a context.
package asynclock

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Releaser releases a held lock. Release is safe to call more than once; only the first call has an effect.
type Releaser interface {
	Release()
}

// Lock is a single-holder lock. The zero value is not usable, create one with New.
type Lock struct {
	sem *semaphore.Weighted
}

// New creates an unlocked Lock.
func New() *Lock {
	return &Lock{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the lock is held.
// Intended usage is `defer l.Acquire().Release()`.
func (l *Lock) Acquire() Releaser {
	// Acquire only fails when the context is done, which never happens for Background.
	_ = l.sem.Acquire(context.Background(), 1)
	return &releaser{sem: l.sem}
}

// AcquireContext blocks until the lock is held or ctx is done.
func (l *Lock) AcquireContext(ctx context.Context) (Releaser, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &releaser{sem: l.sem}, nil
}

// TryAcquire acquires the lock without blocking, reporting whether it succeeded.
func (l *Lock) TryAcquire() (Releaser, bool) {
	if !l.sem.TryAcquire(1) {
		return nil, false
	}
	return &releaser{sem: l.sem}, true
}

type releaser struct {
	sem  *semaphore.Weighted
	once sync.Once
}

func (r *releaser) Release() {
	r.once.Do(func() {
		r.sem.Release(1)
	})
}
