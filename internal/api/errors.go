package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/BigBug273/daily-vocab/internal/api/shared"
	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/service"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest marks malformed request bodies and query parameters.
var ErrInvalidRequest = errors.New("invalid request")

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking their types to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusInternalServerError

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verr *domain.ValidationError
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, service.ErrInvalidLimit):
		return "Invalid limit: must be a non-negative integer"
	case errors.As(err, &verr):
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request format"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the offending JSON fields.
func SanitizeValidationError(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "Validation error"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field(), getValidationTagMessage(fe.Tag())))
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "uuid", "uuid4", "uuid7":
		return "must be a valid UUID"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "oneof":
		return "has an invalid value"
	default:
		return "is invalid"
	}
}

// HandleAPIError writes the response for err. A non-empty message overrides
// the derived safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
