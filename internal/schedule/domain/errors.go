package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that no schedule exists for the requested
	// (id, owner) pair. The query side maps HTTP 404 to this error so the
	// caller can render a missing record distinctly from other failures.
	ErrNotFound = errors.New("schedule not found")

	// ErrReadOnlySource signals an attempt to mutate a schedule projected
	// from another subsystem (DATING, STUDY).
	ErrReadOnlySource = errors.New("schedule source is read-only")
)

// Service names used in transport errors. The command and query services are
// separate deployments and fail independently.
const (
	ServiceCommand = "command"
	ServiceQuery   = "query"
)

// TransportError is a non-success response from the command or query service.
// It carries the raw status and body so the caller can decide how to surface
// the failure. Transport errors are never retried automatically.
type TransportError struct {
	Service string
	Status  int
	Body    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s service returned status %d: %s", e.Service, e.Status, e.Body)
}

// ValidationError is a caller-side precondition failure caught before any
// transport call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
