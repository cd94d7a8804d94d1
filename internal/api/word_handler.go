package api

import (
	"log/slog"
	"net/http"

	"github.com/BigBug273/daily-vocab/internal/api/shared"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/service"
	"github.com/BigBug273/daily-vocab/internal/store"
)

// WordHandler serves vocabulary words.
type WordHandler struct {
	wordService service.WordService
	logger      *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(wordService service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		wordService: wordService,
		logger:      logger.With(slog.String("component", "word_handler")),
	}
}

// GetRandomWord handles GET /api/word.
func (h *WordHandler) GetRandomWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	word, err := h.wordService.RandomWord(r.Context())
	if err != nil {
		message := ""
		if store.IsNotFoundError(err) {
			message = "No words available"
		}
		log.Debug("random word lookup failed", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, message)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}
