// Package threading marks dispatch contexts and moves blocking work off of them.
//
// Inbound JSON-RPC handlers run serially on their connection's read loop, which plays the
// role of the IDE's UI thread: a handler that blocks on an outbound call can stall the
// connection. Routers mark their contexts with WithUIThread, and blocking operations
// refuse to run on a marked context.
package threading

import (
	"context"

	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
)

type uiThreadKey struct{}

// WithUIThread returns a context marked as running on a dispatch goroutine.
func WithUIThread(ctx context.Context) context.Context {
	return context.WithValue(ctx, uiThreadKey{}, true)
}

// IsUIThread reports whether ctx was marked by WithUIThread.
func IsUIThread(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	onUI, _ := ctx.Value(uiThreadKey{}).(bool)
	return onUI
}

// EnsureBackground returns a *errors.UIThreadError if ctx is marked as a dispatch context.
func EnsureBackground(ctx context.Context, operation string) error {
	if IsUIThread(ctx) {
		return &errors.UIThreadError{Operation: operation}
	}
	return nil
}

// RunOnBackground runs fn on a new goroutine with the dispatch marker cleared.
// The returned channel receives fn's result and is then closed.
func RunOnBackground(ctx context.Context, fn func(ctx context.Context) error) <-chan error {
	result := make(chan error, 1)
	bgCtx := context.WithValue(ctx, uiThreadKey{}, false)
	go func() {
		defer close(result)
		result <- fn(bgCtx)
	}()
	return result
}
