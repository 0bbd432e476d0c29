package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Discovery errors
	ErrRootAccess ErrorCode = "ROOT_ACCESS"
	ErrMarkerScan ErrorCode = "MARKER_SCAN"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
)

// SketchError represents a structured error with code and details
type SketchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SketchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SketchError) Unwrap() error {
	return e.Wrapped
}

// Is matches another SketchError by code
func (e *SketchError) Is(target error) bool {
	var targetErr *SketchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SketchError with the given code and message
func New(code ErrorCode, message string) *SketchError {
	return &SketchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SketchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SketchError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a SketchError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SketchError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SketchError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SketchError) WithDetail(key string, value interface{}) *SketchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sketchErr *SketchError
	if errors.As(err, &sketchErr) {
		return sketchErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SketchError
func GetErrorCode(err error) ErrorCode {
	var sketchErr *SketchError
	if errors.As(err, &sketchErr) {
		return sketchErr.Code
	}
	return ErrUnknown
}
