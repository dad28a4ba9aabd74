// Package errors provides structured errors with stable codes so callers can
// classify failures without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Error codes as constants.
const (
	// ErrCodePrecondition marks a failed precondition check (missing tool,
	// missing authentication).
	ErrCodePrecondition = "PRECONDITION_FAILED"

	// ErrCodeConfig marks invalid or incomplete configuration input.
	ErrCodeConfig = "CONFIG_INVALID"

	// ErrCodeExec marks a failed external command invocation.
	ErrCodeExec = "EXEC_FAILED"

	// ErrCodeInternal marks an unexpected internal failure.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Error is a structured error carrying a stable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a structured error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a structured error wrapping an underlying cause.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Code extracts the structured code from err, or ErrCodeInternal if err
// carries no code.
func Code(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return Code(err) == code
}
