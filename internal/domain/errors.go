// Package domain defines core types, interfaces, and errors for the feeding tracker.
package domain

import "fmt"

// NotFoundError indicates a resource was not found. Ownership mismatches on
// child and meal lookups are reported with this same error so a non-owner
// cannot distinguish "absent" from "owned by someone else".
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AccessDeniedError indicates the caller explicitly asked to act as another
// parent. Only parent-path mismatches produce this error.
type AccessDeniedError struct {
	Code    string
	Message string
}

func (e *AccessDeniedError) Error() string { return e.Message }

// UnauthenticatedError indicates missing or invalid credentials.
type UnauthenticatedError struct {
	Code    string
	Message string
}

func (e *UnauthenticatedError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a duplicate resource.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Stable machine-readable error codes surfaced to API clients.
const (
	CodeUserAlreadyExists  = "user-already-exists"
	CodeUserNotFound       = "user-does-not-exists"
	CodeChildNotFound      = "child-does-not-exists"
	CodeMealNotFound       = "meal-does-not-exists"
	CodeInvalidCredentials = "invalid-credentials"
	CodeUnauthenticated    = "unauthenticated"
	CodeForbidden          = "forbidden"
	CodeValidationFailed   = "validation-failed"
	CodeEmptyPayload       = "empty-payload"
)

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(code, format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrAccessDenied creates an AccessDeniedError with a formatted message.
func ErrAccessDenied(format string, args ...interface{}) *AccessDeniedError {
	return &AccessDeniedError{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

// ErrUnauthenticated creates an UnauthenticatedError with a formatted message.
func ErrUnauthenticated(code, format string, args ...interface{}) *UnauthenticatedError {
	return &UnauthenticatedError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(code, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Code: code, Message: fmt.Sprintf(format, args...)}
}
