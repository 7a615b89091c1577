package errors

import (
	"errors"
	"net/http"
)

// StatusError is the error type core operations return when the outcome has a
// well-defined HTTP mapping. Anything else is treated as an internal error
// (500) at the handler level.
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return e.Message
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field details alongside the generic 400 outcome.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

func statusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

func NotFound(message string) *StatusError {
	return &StatusError{Message: message, StatusCode: http.StatusNotFound}
}

func Unauthorized(message string) *StatusError {
	return &StatusError{Message: message, StatusCode: http.StatusUnauthorized}
}

func BadRequest(message string) *StatusError {
	return &StatusError{Message: message, StatusCode: http.StatusBadRequest}
}
