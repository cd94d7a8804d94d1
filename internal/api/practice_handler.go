package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/BigBug273/daily-vocab/internal/api/shared"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/service"
)

// PracticeHandler scores practice sentences.
type PracticeHandler struct {
	practiceService service.PracticeService
	logger          *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(practiceService service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "practice_handler")),
	}
}

// ValidateSentence handles POST /api/validate-sentence.
func (h *PracticeHandler) ValidateSentence(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ValidateSentenceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequest, err), "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	wordID, err := parseWordID(req.WordID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.practiceService.ValidateSentence(r.Context(), wordID, req.Sentence)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("sentence validated",
		slog.String("word_id", wordID.String()),
		slog.Float64("score", result.Score))

	shared.RespondWithJSON(w, r, http.StatusOK, practiceResultToResponse(result))
}
