package errors

import (
	stderr "errors"
	"fmt"
)

// ServiceUnavailableError indicates that the backend has not registered the requested service yet.
type ServiceUnavailableError struct {
	Service string
}

// Error is an implementation of the error interface.
func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("backend service %q is not available", e.Service)
}

// IsServiceUnavailable reports whether a ServiceUnavailableError is part of the error chain.
func IsServiceUnavailable(e error) bool {
	var su *ServiceUnavailableError
	return stderr.As(e, &su)
}

// ScopeConflictError indicates an attempt to declare a configuration scope while a different one is active.
type ScopeConflictError struct {
	CurrentID   string
	RequestedID string
}

// Error is an implementation of the error interface.
func (e *ScopeConflictError) Error() string {
	return fmt.Sprintf("configuration scope %q is active, cannot set %q", e.CurrentID, e.RequestedID)
}

// ScopeConflict returns the conflicting ids and true if a ScopeConflictError is part of the error chain.
func ScopeConflict(e error) (currentID, requestedID string, ok bool) {
	var sc *ScopeConflictError
	if !stderr.As(e, &sc) {
		return "", "", false
	}
	return sc.CurrentID, sc.RequestedID, true
}

// ConnectionNotFoundError indicates that a connection id is not present in the local repository.
type ConnectionNotFoundError struct {
	ID string
}

// Error is an implementation of the error interface.
func (e *ConnectionNotFoundError) Error() string {
	return fmt.Sprintf("connection %q not found", e.ID)
}

// NoSessionFoundError indicates that a context does not carry the IDE session it should be routed to.
type NoSessionFoundError struct{}

// Error is an implementation of the error interface.
func (e *NoSessionFoundError) Error() string {
	return "no IDE session found in context"
}
