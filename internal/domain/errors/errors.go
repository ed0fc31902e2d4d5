// Package errors defines the application error taxonomy. Every failure that
// reaches the delivery layer is one of these, so the HTTP error handler can
// map it to a status code and the wire error shape.
package errors

import (
	"fmt"
	"net/http"

	"atlas/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// Wrap annotates the error with additional context for logs. The wrapped
// error still matches the original with errors.Is/errors.As.
func (e *BaseError) Wrap(message string) error {
	return errors.Wrap(e, message)
}

// WithMessagef returns a copy of the error carrying a specific user-facing
// message while keeping the status and business code.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
	}
}

// Is lets a customized copy match its template, so
// errors.Is(ErrNotFound.WithMessagef(...), ErrNotFound) holds.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request data",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid credentials",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"insufficient permissions to perform the action",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource was not found",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource already exists",
	)

	// ErrOrphanedResource guards worlds and locations whose creator account
	// was deleted: they can never be edited or removed again. 424 is an odd
	// status for this, but it is the contract existing clients rely on.
	ErrOrphanedResource = NewBaseError(
		http.StatusFailedDependency,
		"ORPHANED_RESOURCE",
		"the resource does not have a creator, action can not be done",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"something went wrong",
	)
)
