// Package errors provides structured error types for fibernet.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMethod, "unknown method: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidMethod) {
//	    // Handle validation error
//	}
//
//	// Attach a code to an error from the core packages
//	err = errors.Classify(siteErr)
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	fio "github.com/matzehuels/fibernet/pkg/io"
	"github.com/matzehuels/fibernet/pkg/mst"
	"github.com/matzehuels/fibernet/pkg/site"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeParse         Code = "PARSE_ERROR"
	ErrCodeEmptySite     Code = "EMPTY_SITE"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidMethod Code = "INVALID_METHOD"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeCanceled Code = "CANCELED"
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
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Classify attaches a code to an error returned by the core packages.
// Errors that already carry a code are returned unchanged, and nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Code: classify(err), Message: "request failed", Cause: err}
}

func classify(err error) Code {
	var pe *fio.ParseError
	switch {
	case errors.As(err, &pe):
		return ErrCodeParse
	case errors.Is(err, site.ErrNoProbes), errors.Is(err, mst.ErrEmpty):
		return ErrCodeEmptySite
	case errors.Is(err, site.ErrProbeOutOfRange), errors.Is(err, site.ErrSiteOutOfRange):
		return ErrCodeOutOfRange
	case errors.Is(err, mst.ErrUnknownMethod):
		return ErrCodeInvalidMethod
	case errors.Is(err, os.ErrNotExist):
		return ErrCodeFileNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeCanceled
	default:
		return ErrCodeInternal
	}
}

// HTTPStatus maps an error code to the HTTP status the API responds with.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeParse, ErrCodeInvalidFormat, ErrCodeInvalidMethod:
		return http.StatusBadRequest
	case ErrCodeEmptySite, ErrCodeOutOfRange:
		return http.StatusUnprocessableEntity
	case ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeCanceled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
