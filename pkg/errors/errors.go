// Package errors provides structured error types for papernet.
//
// Every failure that crosses a package boundary carries a machine-readable
// code so the CLI and the preview server can react to the category of the
// failure without parsing messages:
//   - INVALID_*: malformed input, files or flags
//   - CAPACITY_EXCEEDED, CONTRACT_VIOLATION: topology the tool cannot hold
//   - NOTHING_TO_LOAD: no usable layout on disk (not a failure for callers)
//   - SAVE_FAILED: the layout could not be persisted
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDegree, "cell %d has degree %d", i, n)
//	if errors.Is(err, errors.ErrCodeInvalidDegree) {
//	    // Handle topology error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSaveFailed, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidDegree Code = "INVALID_DEGREE"

	// Topology errors
	ErrCodeCapacityExceeded  Code = "CAPACITY_EXCEEDED"
	ErrCodeContractViolation Code = "CONTRACT_VIOLATION"

	// Persistence errors
	ErrCodeNothingToLoad Code = "NOTHING_TO_LOAD"
	ErrCodeSaveFailed    Code = "SAVE_FAILED"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It walks the whole chain, so a coded error wrapped by another coded
// error matches either code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
