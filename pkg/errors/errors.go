// Package errors provides the structured error taxonomy for storconn with
// kinds, categories, and cause chaining.
package errors

import (
	"fmt"
	"time"

	"github.com/storconn/storconn/pkg/types"
)

// Kind represents a structured error kind for connection lifecycle failures.
type Kind string

const (
	// KindConfigInvalid indicates a required config field is missing or
	// malformed. Raised at construction, before any I/O.
	KindConfigInvalid Kind = "CONFIG_INVALID"

	// KindHandshakeFailed indicates the network handshake or authentication
	// exchange with the remote server failed.
	KindHandshakeFailed Kind = "HANDSHAKE_FAILED"

	// KindNotConnected indicates a handle-dependent operation was invoked
	// while the connection is not established.
	KindNotConnected Kind = "NOT_CONNECTED"

	// KindAlreadyDisconnected indicates an attempt to reuse a manager whose
	// connection has already been torn down.
	KindAlreadyDisconnected Kind = "ALREADY_DISCONNECTED"

	// KindStateViolation indicates any other lifecycle precondition breach.
	KindStateViolation Kind = "STATE_VIOLATION"
)

// Category represents the general category of an error.
type Category string

const (
	CategoryConfiguration Category = "configuration"
	CategoryConnection    Category = "connection"
	CategoryState         Category = "state"
)

// ConnError represents a structured connection error with kind, backend, and
// the original driver failure as an opaque cause.
type ConnError struct {
	Kind      Kind              `json:"kind"`
	Category  Category          `json:"category"`
	Backend   types.BackendKind `json:"backend,omitempty"`
	Message   string            `json:"message"`
	Cause     error             `json:"-"`
	Timestamp time.Time         `json:"timestamp"`
	Retryable bool              `json:"retryable"`
}

// Error implements the error interface.
func (e *ConnError) Error() string {
	if e.Backend != "" {
		if e.Cause != nil {
			return fmt.Sprintf("[%s] %s: %s: %v", e.Backend, e.Kind, e.Message, e.Cause)
		}
		return fmt.Sprintf("[%s] %s: %s", e.Backend, e.Kind, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error wrapping compatibility.
func (e *ConnError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error by kind.
func (e *ConnError) Is(target error) bool {
	if connErr, ok := target.(*ConnError); ok {
		return e.Kind == connErr.Kind
	}
	return false
}

// New creates a new connection error with default values.
func New(kind Kind, message string) *ConnError {
	return &ConnError{
		Kind:      kind,
		Category:  GetCategory(kind),
		Message:   message,
		Timestamp: time.Now(),
		Retryable: IsRetryableByDefault(kind),
	}
}

// WithBackend sets the backend the error originated from.
func (e *ConnError) WithBackend(backend types.BackendKind) *ConnError {
	e.Backend = backend
	return e
}

// WithCause sets the underlying cause.
func (e *ConnError) WithCause(cause error) *ConnError {
	e.Cause = cause
	return e
}

// GetCategory determines the category based on the error kind.
func GetCategory(kind Kind) Category {
	switch kind {
	case KindConfigInvalid:
		return CategoryConfiguration
	case KindHandshakeFailed:
		return CategoryConnection
	default:
		return CategoryState
	}
}

// IsRetryableByDefault determines if an error kind is retryable by default.
// Only handshake failures are: a fresh attempt against a recovered server
// can succeed, whereas config and state errors require caller changes.
func IsRetryableByDefault(kind Kind) bool {
	return kind == KindHandshakeFailed
}

// IsKind reports whether err is a ConnError of the given kind anywhere in
// its chain.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if connErr, ok := err.(*ConnError); ok {
			return connErr.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
