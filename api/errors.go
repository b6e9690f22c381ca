// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the recarray library.

package api

import "fmt"

// Common errors used across the library. Conversion operations wrap these
// with fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	ErrLengthMismatch = fmt.Errorf("length mismatch")
	ErrSizeMismatch   = fmt.Errorf("byte size mismatch")
	ErrNotArrayType   = fmt.Errorf("not a fixed-size array type")
	ErrRegionReleased = fmt.Errorf("arena region already released")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeLengthMismatch
	ErrCodeSizeMismatch
	ErrCodeNotArrayType
	ErrCodeRegionReleased
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps structured errors back to their sentinel for errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeLengthMismatch:
		return ErrLengthMismatch
	case ErrCodeSizeMismatch:
		return ErrSizeMismatch
	case ErrCodeNotArrayType:
		return ErrNotArrayType
	case ErrCodeRegionReleased:
		return ErrRegionReleased
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
