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
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Scan errors
	ErrDirectoryNotFound ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrFileRead          ErrorCode = "FILE_READ"

	// Rule corpus errors
	ErrCorpusLoad ErrorCode = "CORPUS_LOAD"

	// Policy errors
	ErrPolicyViolation ErrorCode = "POLICY_VIOLATION"
)

// SkillguardError represents a structured error with code and details
type SkillguardError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SkillguardError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SkillguardError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SkillguardError carrying the same code
func (e *SkillguardError) Is(target error) bool {
	var targetErr *SkillguardError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SkillguardError with the given code and message
func New(code ErrorCode, message string) *SkillguardError {
	return &SkillguardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SkillguardError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SkillguardError {
	return &SkillguardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SkillguardError
func Wrap(err error, code ErrorCode, message string) *SkillguardError {
	if err == nil {
		return nil
	}
	return &SkillguardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SkillguardError {
	if err == nil {
		return nil
	}
	return &SkillguardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SkillguardError) WithDetail(key string, value interface{}) *SkillguardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sgErr *SkillguardError
	if errors.As(err, &sgErr) {
		return sgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SkillguardError
func GetErrorCode(err error) ErrorCode {
	var sgErr *SkillguardError
	if errors.As(err, &sgErr) {
		return sgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SkillguardError
func GetErrorDetails(err error) map[string]interface{} {
	var sgErr *SkillguardError
	if errors.As(err, &sgErr) {
		return sgErr.Details
	}
	return nil
}
