package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *Error carrying the same code and message, so wrapped
// sentinels still compare equal under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrTaskNotFound       = NewError(ErrCodeNotFound, "task not found")
	ErrThemeNotFound      = NewError(ErrCodeNotFound, "theme preference not found")
	ErrEmptyTitle         = NewError(ErrCodeValidation, "task title must not be empty")
	ErrInvalidThemeMode   = NewError(ErrCodeValidation, "theme_mode must be one of light, dark, system")
	ErrThemeModeRequired  = NewError(ErrCodeInvalid, "theme_mode is required for new theme preferences")
	ErrCredentialsMissing = NewError(ErrCodeInvalid, "email and password are required")
	ErrSignupIncomplete   = NewError(ErrCodeInvalid, "email, password, and name are required")
	ErrForbidden          = NewError(ErrCodeForbidden, "access denied: cannot access another user's tasks")
	ErrInvalidToken       = NewError(ErrCodeUnauthorized, "could not validate credentials")
	ErrInvalidPayload     = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
