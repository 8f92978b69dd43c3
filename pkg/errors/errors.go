// Package errors provides structured error types for the jsoncanvas engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the edit session
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages surfaced next to the edit dialogs
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a flat naming convention:
//   - INVALID_*: input or document validation failures
//   - *_NOT_FOUND / *_OUT_OF_RANGE: path resolution failures
//   - KEY_CONFLICT: rename collisions
//   - UNSUPPORTED: operations on the wrong container kind
//
// # Usage
//
//	err := errors.New(errors.ErrCodeKeyNotFound, "property %q not found", key)
//	if errors.Is(err, errors.ErrCodeKeyNotFound) {
//	    // Handle missing property
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidJSON, parseErr, "document is not valid JSON")
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
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeInvalidJSON  Code = "INVALID_JSON"
	ErrCodeInvalidValue Code = "INVALID_VALUE"
	ErrCodeEmptyKey     Code = "EMPTY_KEY"

	// Path resolution errors
	ErrCodeKeyNotFound     Code = "KEY_NOT_FOUND"
	ErrCodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	ErrCodePathNotFound    Code = "PATH_NOT_FOUND"

	// Mutation conflicts
	ErrCodeKeyConflict Code = "KEY_CONFLICT"

	// Operations applied to the wrong value kind
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
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
