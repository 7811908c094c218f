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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Lexical path errors
	ErrParse          ErrorCode = "PARSE"
	ErrInvalidName    ErrorCode = "INVALID_NAME"
	ErrInvalidSuffix  ErrorCode = "INVALID_SUFFIX"
	ErrNotRelative    ErrorCode = "NOT_RELATIVE"
	ErrFlavorMismatch ErrorCode = "FLAVOR_MISMATCH"
	ErrPattern        ErrorCode = "PATTERN"

	// Filesystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileExists   ErrorCode = "FILE_EXISTS"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrNotDirectory ErrorCode = "NOT_DIRECTORY"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrSymlink      ErrorCode = "SYMLINK"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// PathlibError represents a structured error with code and details
type PathlibError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathlibError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathlibError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathlibError) Is(target error) bool {
	var targetErr *PathlibError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathlibError with the given code and message
func New(code ErrorCode, message string) *PathlibError {
	return &PathlibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathlibError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathlibError {
	return &PathlibError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathlibError
func Wrap(err error, code ErrorCode, message string) *PathlibError {
	if err == nil {
		return nil
	}
	return &PathlibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathlibError {
	if err == nil {
		return nil
	}
	return &PathlibError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathlibError) WithDetail(key string, value interface{}) *PathlibError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PathlibError) WithDetails(details map[string]interface{}) *PathlibError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pathErr *PathlibError
	if errors.As(err, &pathErr) {
		return pathErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathlibError
func GetErrorCode(err error) ErrorCode {
	var pathErr *PathlibError
	if errors.As(err, &pathErr) {
		return pathErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathlibError
func GetErrorDetails(err error) map[string]interface{} {
	var pathErr *PathlibError
	if errors.As(err, &pathErr) {
		return pathErr.Details
	}
	return nil
}
