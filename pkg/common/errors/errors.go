package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gogate library

var (
	// ErrClosed indicates that an operation was attempted on a closed gate
	ErrClosed = errors.New("gate is closed")

	// ErrQueueOverflow indicates that a submission arrived while the wait
	// queue was already at its configured capacity
	ErrQueueOverflow = errors.New("wait queue overflow")

	// ErrQueueTimeout indicates that a queued submission exceeded its wait
	// timeout before being admitted
	ErrQueueTimeout = errors.New("queue wait timed out")

	// ErrAborted indicates that a pending submission or idle wait was
	// canceled before it could complete
	ErrAborted = errors.New("aborted")

	// ErrIdleTimeout indicates that an idle wait exceeded its timeout
	// before the gate drained
	ErrIdleTimeout = errors.New("idle wait timed out")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrQueueTimeout) || errors.Is(err, ErrQueueOverflow)
}

// IsTemporary returns true if the error indicates a temporary condition
func IsTemporary(err error) bool {
	return errors.Is(err, ErrQueueTimeout) || errors.Is(err, ErrQueueOverflow) ||
		errors.Is(err, ErrIdleTimeout)
}

// ValidationError describes an invalid configuration or call-time option.
// It wraps ErrInvalidConfiguration so callers can classify it with errors.Is.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration for errors.Is matching.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a hint describing how to fix the value.
// It returns the same instance for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// OperationError describes a failed operation with its underlying cause.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// NewOperationError creates an OperationError wrapping the given cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}
