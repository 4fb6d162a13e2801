package errors

import (
	stderr "errors"
	"fmt"
)

// UIThreadError indicates that a blocking operation was invoked from a dispatch context.
type UIThreadError struct {
	Operation string
}

// Error is an implementation of the error interface.
func (e *UIThreadError) Error() string {
	return fmt.Sprintf("%s must not be called on the UI thread", e.Operation)
}

// IsUIThread reports whether a UIThreadError is part of the error chain.
func IsUIThread(e error) bool {
	var ut *UIThreadError
	return stderr.As(e, &ut)
}
