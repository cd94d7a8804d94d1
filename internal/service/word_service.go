package service

import (
	"context"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/store"
)

// WordService hands out vocabulary words.
type WordService interface {
	// RandomWord returns one word chosen uniformly at random.
	// The error matches store.ErrNotFound when the catalog is empty.
	RandomWord(ctx context.Context) (*domain.Word, error)
}

type wordServiceImpl struct {
	words  store.WordStore
	logger *slog.Logger
}

// NewWordService creates a WordService.
func NewWordService(words store.WordStore, logger *slog.Logger) (WordService, error) {
	if words == nil {
		return nil, domain.NewValidationError("words", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &wordServiceImpl{
		words:  words,
		logger: logger.With(slog.String("component", "word_service")),
	}, nil
}

// RandomWord implements WordService.RandomWord.
func (s *wordServiceImpl) RandomWord(ctx context.Context) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word, err := s.words.RandomWord(ctx)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("word catalog is empty")
		}
		return nil, NewServiceError("word", "random_word", err)
	}

	log.Debug("served random word",
		slog.String("word_id", word.ID.String()),
		slog.String("difficulty_level", string(word.DifficultyLevel)))
	return word, nil
}
