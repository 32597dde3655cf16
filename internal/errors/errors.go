// Package errors defines the service error kinds and their HTTP status
// mapping. Handlers never inspect error strings; they resolve the status
// through GetServiceError.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies an error category.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
)

// ServiceError carries a user-facing message plus the HTTP status it maps
// to. It implements error and supports errors.As.
type ServiceError struct {
	Code       Code
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Is reports whether target is a ServiceError with the same code, so
// errors.Is(err, errors.NotFound("")) style comparisons work in tests.
func (e *ServiceError) Is(target error) bool {
	var other *ServiceError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Validation builds a 400 error for a missing or empty required field.
func Validation(format string, args ...interface{}) *ServiceError {
	return &ServiceError{
		Code:       CodeValidation,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}

// Conflict builds a 409 error for a uniqueness violation.
func Conflict(format string, args ...interface{}) *ServiceError {
	return &ServiceError{
		Code:       CodeConflict,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusConflict,
	}
}

// Unauthorized builds a 401 error for a missing or unrecognized token.
func Unauthorized(message string) *ServiceError {
	if message == "" {
		message = "Unauthorized"
	}
	return &ServiceError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NotFound builds a 404 error for an unknown resource id.
func NotFound(format string, args ...interface{}) *ServiceError {
	return &ServiceError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusNotFound,
	}
}

// GetServiceError extracts a ServiceError from err, or nil if the chain
// contains none.
func GetServiceError(err error) *ServiceError {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// HTTPStatusOf resolves the status code for err. Untyped errors degrade to
// 400 rather than a server fault; missing-field conditions surface as
// validation failures throughout the core.
func HTTPStatusOf(err error) int {
	if svcErr := GetServiceError(err); svcErr != nil {
		return svcErr.HTTPStatus
	}
	return http.StatusBadRequest
}
