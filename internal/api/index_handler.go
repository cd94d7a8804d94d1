package api

import (
	"net/http"

	"github.com/BigBug273/daily-vocab/internal/api/shared"
)

// APIName is reported by the index endpoint.
const APIName = "Vocabulary Practice API"

// IndexHandler returns a handler for GET / describing the API.
func IndexHandler(version string) http.HandlerFunc {
	body := IndexResponse{
		Message: APIName,
		Version: version,
		Endpoints: map[string]string{
			"random_word": "/api/word",
			"validate":    "/api/validate-sentence",
			"summary":     "/api/summary",
			"history":     "/api/history",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, body)
	}
}

// HealthHandler handles GET /health.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
