package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/moviedeck/moviedeck/internal/api"
	"github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/logger"
)

// DecodeValidate decodes a JSON request body into body and validates it
// against its struct tags. Validation failures come back as a
// *errors.ValidationError so the handler layer can include field details.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return errors.BadRequest("Body is invalid json")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(body)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		logger.Log.Error("validator failed", "error", err)
		return errors.BadRequest("Validation failed")
	}

	fields := make([]errors.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, errors.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return &errors.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name must be between 2 and 50 characters"
	case "Email":
		return "Please provide a valid email"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters long"
		}
		return "Password is required"
	}
	return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteError maps a core error to the JSON error envelope. Unknown errors
// become a generic 500; their detail is logged, never sent to the client.
func WriteError(w http.ResponseWriter, err error) {
	if ve, ok := err.(*errors.ValidationError); ok {
		WriteJSON(w, http.StatusBadRequest, api.ErrorResponse{
			Message: "Validation failed",
			Errors:  ve.Fields,
		})
		return
	}
	if se, ok := err.(*errors.StatusError); ok {
		WriteJSON(w, se.StatusCode, api.ErrorResponse{Message: se.Message})
		return
	}

	logger.Log.Error("internal error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.ErrorResponse{Message: "Server Error"})
}
