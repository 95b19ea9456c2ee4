package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates the reducers disagreed on the aggregate.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorOverflow = 5   // Indicates the aggregate does not fit in an int64.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ReductionError encapsulates a failure of one reducer while preserving the
// original cause, so callers can still match overflow or context errors.
type ReductionError struct {
	// Reducer is the registry name of the reducer that failed.
	Reducer string
	// Cause is the underlying error that triggered this reduction error.
	Cause error
}

// Error returns the reducer name followed by the cause message.
func (e ReductionError) Error() string {
	if e.Reducer == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s reduction: %v", e.Reducer, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e ReductionError) Unwrap() error { return e.Cause }

// TimeoutError reports that a reduction ran past the configured --timeout.
// Cause keeps the underlying context error so errors.Is still matches
// context.DeadlineExceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
	// Cause is the error the operation returned, if any.
	Cause error
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	msg := fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying context error.
func (e TimeoutError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// OverflowError reports that an arithmetic step left the int64 range.
// Operands are kept for diagnostics.
type OverflowError struct {
	// Operation is "add" or "mul".
	Operation string
	// A and B are the operands of the overflowing step.
	A, B int64
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s(%d, %d) exceeds int64", e.Operation, e.A, e.B)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsOverflow reports whether err carries an OverflowError anywhere in its chain.
func IsOverflow(err error) bool {
	var overflowErr OverflowError
	return errors.As(err, &overflowErr)
}
