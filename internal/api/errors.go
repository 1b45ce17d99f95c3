package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/classroom-assist/internal/domain"
	"github.com/phrazzld/classroom-assist/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrTrendNotFound),
		errors.Is(err, domain.ErrUpdateNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrAlreadyAdopted),
		errors.Is(err, domain.ErrAlreadyIntegrated):
		return http.StatusConflict

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidIntegrationStatus):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrTrendNotFound):
		return "Trend not found"
	case errors.Is(err, domain.ErrUpdateNotFound):
		return "Content update not found"
	case errors.Is(err, domain.ErrAlreadyAdopted):
		return "Trend already adopted"
	case errors.Is(err, domain.ErrAlreadyIntegrated):
		return "Content update already integrated"
	case errors.Is(err, domain.ErrInvalidIntegrationStatus):
		return "Invalid integration status"
	case errors.Is(err, service.ErrInvalidInput):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LessonPlanRequest.Subject' Error:Field validation for 'Subject' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte", "gt":
		return "too small"
	case "max", "lte", "lt":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
