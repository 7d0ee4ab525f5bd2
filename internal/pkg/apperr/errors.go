// Package apperr defines the operational error taxonomy. Every expected
// failure carries a stable HTTP status code and a caller-safe message;
// anything that is not an AppError surfaces as a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an expected, operational error
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithErr attaches an underlying cause for logging without changing the
// caller-visible message
func (e *AppError) WithErr(err error) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Err: err}
}

// New creates an AppError with an explicit status code
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// BadRequest covers malformed input and failed business validation
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// BadRequestf formats a BadRequest message
func BadRequestf(format string, args ...interface{}) *AppError {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Unauthorized covers authentication failures
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

// Forbidden covers role and ownership violations
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// NotFound covers missing resources
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Conflict covers duplicate writes: a second rating, a second discount, an
// already-cancelled booking
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

// Conflictf formats a Conflict message
func Conflictf(format string, args ...interface{}) *AppError {
	return New(http.StatusConflict, fmt.Sprintf(format, args...))
}

// Unavailable covers geocoder or payment-gateway outages
func Unavailable(message string) *AppError {
	return New(http.StatusServiceUnavailable, message)
}

// TooManyRequests covers rate limiting
func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message)
}

// As extracts an AppError from an error chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the HTTP status for an error, defaulting to 500 for
// unexpected errors
func CodeOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// MessageOf returns the caller-safe message for an error; unexpected errors
// never leak internal detail
func MessageOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return "internal server error"
}

// IsCode reports whether err is an AppError with the given status code
func IsCode(err error, code int) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
