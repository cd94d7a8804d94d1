package api

import (
	"log/slog"
	"net/http"

	"github.com/BigBug273/daily-vocab/internal/api/shared"
	"github.com/BigBug273/daily-vocab/internal/service"
)

// StatsHandler serves the practice summary and history.
type StatsHandler struct {
	statsService service.StatsService
	logger       *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(statsService service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		statsService: statsService,
		logger:       logger.With(slog.String("component", "stats_handler")),
	}
}

// GetSummary handles GET /api/summary.
func (h *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.Summary(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute summary")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summaryToResponse(summary))
}

// GetHistory handles GET /api/history?limit=N.
func (h *StatsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.statsService.DefaultHistoryLimit())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, err := h.statsService.History(r.Context(), limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, historyToResponse(items))
}
