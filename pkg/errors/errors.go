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

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite   ErrorCode = "CONFIG_WRITE"

	// Template errors
	ErrMalformedTemplateName ErrorCode = "MALFORMED_TEMPLATE_NAME"
	ErrTemplateNotFound      ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrNoPagesRequested      ErrorCode = "NO_PAGES_REQUESTED"

	// FileSystem errors
	ErrDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrFileNotFound      ErrorCode = "FILE_NOT_FOUND"
	ErrInvalidEncoding   ErrorCode = "INVALID_ENCODING"
	ErrFileWrite         ErrorCode = "FILE_WRITE"
	ErrFileExists        ErrorCode = "FILE_EXISTS"

	// External programs
	ErrClipboard ErrorCode = "CLIPBOARD"
)

// TemplatesError represents a structured error with code and details
type TemplatesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TemplatesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TemplatesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TemplatesError) Is(target error) bool {
	var targetErr *TemplatesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TemplatesError with the given code and message
func New(code ErrorCode, message string) *TemplatesError {
	return &TemplatesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TemplatesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TemplatesError {
	return &TemplatesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TemplatesError
func Wrap(err error, code ErrorCode, message string) *TemplatesError {
	if err == nil {
		return nil
	}
	return &TemplatesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TemplatesError {
	if err == nil {
		return nil
	}
	return &TemplatesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TemplatesError) WithDetail(key string, value interface{}) *TemplatesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tplErr *TemplatesError
	if errors.As(err, &tplErr) {
		return tplErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TemplatesError
func GetErrorCode(err error) ErrorCode {
	var tplErr *TemplatesError
	if errors.As(err, &tplErr) {
		return tplErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TemplatesError
func GetErrorDetails(err error) map[string]interface{} {
	var tplErr *TemplatesError
	if errors.As(err, &tplErr) {
		return tplErr.Details
	}
	return nil
}
