package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/service"
	"github.com/google/uuid"
)

// parseLimit reads the "limit" query parameter. A missing or empty value
// yields def. Anything that is not a non-negative integer is a validation
// error.
func parseLimit(r *http.Request, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domain.NewValidationError("limit", "must be a non-negative integer", service.ErrInvalidLimit)
	}
	return limit, nil
}

// parseWordID parses a word id already checked by the uuid validator tag.
func parseWordID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: word_id: %v", ErrInvalidRequest, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, domain.NewValidationError("word_id", "cannot be empty", domain.ErrInvalidID)
	}
	return id, nil
}
