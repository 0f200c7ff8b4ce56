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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Resolution errors
	ErrUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
	ErrUnknownOperation    ErrorCode = "UNKNOWN_OPERATION"
	ErrMissingInput        ErrorCode = "MISSING_INPUT"
	ErrConfigLoad          ErrorCode = "CONFIG_LOAD"

	// Filesystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Operation errors
	ErrCommandFailed     ErrorCode = "COMMAND_FAILED"
	ErrMalformedDocument ErrorCode = "MALFORMED_DOCUMENT"
	ErrEnvSet            ErrorCode = "ENV_SET"
)

// ChefopsError represents a structured error with code and details
type ChefopsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ChefopsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ChefopsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ChefopsError) Is(target error) bool {
	var targetErr *ChefopsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ChefopsError with the given code and message
func New(code ErrorCode, message string) *ChefopsError {
	return &ChefopsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ChefopsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ChefopsError {
	return &ChefopsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ChefopsError
func Wrap(err error, code ErrorCode, message string) *ChefopsError {
	if err == nil {
		return nil
	}
	return &ChefopsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ChefopsError {
	if err == nil {
		return nil
	}
	return &ChefopsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ChefopsError) WithDetail(key string, value interface{}) *ChefopsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var chefopsErr *ChefopsError
	if errors.As(err, &chefopsErr) {
		return chefopsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ChefopsError
func GetErrorCode(err error) ErrorCode {
	var chefopsErr *ChefopsError
	if errors.As(err, &chefopsErr) {
		return chefopsErr.Code
	}
	return ErrUnknown
}
