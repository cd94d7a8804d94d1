package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/domain/scoring"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ScoreRecorder receives every scored sentence, typically for metrics.
type ScoreRecorder interface {
	ObserveSentence(bucket, level string, score float64)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSentence(string, string, float64) {}

// PracticeResult is the outcome of scoring and logging one sentence.
type PracticeResult struct {
	Session           *domain.PracticeSession
	Score             float64
	Level             domain.DifficultyLevel
	Suggestion        string
	CorrectedSentence string
}

// PracticeService scores practice sentences and appends them to the log.
type PracticeService interface {
	// ValidateSentence scores sentence against the word identified by wordID
	// and records the attempt. The word lookup and the insert share one
	// transaction. The error matches store.ErrNotFound for an unknown word and
	// domain.ErrValidation for a blank sentence.
	ValidateSentence(ctx context.Context, wordID uuid.UUID, sentence string) (*PracticeResult, error)
}

type practiceServiceImpl struct {
	tx       store.Transactor
	words    store.WordStore
	practice store.PracticeStore
	scorer   scoring.Scorer
	recorder ScoreRecorder
	logger   *slog.Logger
}

// NewPracticeService creates a PracticeService. A nil recorder disables
// score recording.
func NewPracticeService(
	tx store.Transactor,
	words store.WordStore,
	practice store.PracticeStore,
	scorer scoring.Scorer,
	recorder ScoreRecorder,
	logger *slog.Logger,
) (PracticeService, error) {
	if tx == nil {
		return nil, domain.NewValidationError("tx", "cannot be nil", domain.ErrValidation)
	}
	if words == nil {
		return nil, domain.NewValidationError("words", "cannot be nil", domain.ErrValidation)
	}
	if practice == nil {
		return nil, domain.NewValidationError("practice", "cannot be nil", domain.ErrValidation)
	}
	if scorer == nil {
		return nil, domain.NewValidationError("scorer", "cannot be nil", domain.ErrValidation)
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &practiceServiceImpl{
		tx:       tx,
		words:    words,
		practice: practice,
		scorer:   scorer,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "practice_service")),
	}, nil
}

// ValidateSentence implements PracticeService.ValidateSentence.
func (s *practiceServiceImpl) ValidateSentence(
	ctx context.Context,
	wordID uuid.UUID,
	sentence string,
) (*PracticeResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "cannot be empty", domain.ErrInvalidID)
	}
	if strings.TrimSpace(sentence) == "" {
		return nil, domain.NewValidationError("sentence", "cannot be empty", domain.ErrEmptyContent)
	}

	var (
		result  scoring.Result
		session *domain.PracticeSession
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		word, err := s.words.WithTx(tx).GetByID(ctx, wordID)
		if err != nil {
			return err
		}

		result = s.scorer.Score(sentence, word.Word, word.DifficultyLevel)

		pending, err := domain.NewPracticeSession(
			word.ID,
			sentence,
			result.Score,
			result.Suggestion,
			result.CorrectedSentence,
		)
		if err != nil {
			return err
		}

		session, err = s.practice.WithTx(tx).Append(ctx, pending)
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("sentence submitted for unknown word", slog.String("word_id", wordID.String()))
		} else {
			log.Error("failed to record practice session",
				slog.String("word_id", wordID.String()),
				slog.String("error", err.Error()))
		}
		return nil, NewServiceError("practice", "validate_sentence", err)
	}

	s.recorder.ObserveSentence(string(result.Bucket), string(result.Level), result.Score)

	log.Info("practice session recorded",
		slog.String("session_id", session.ID.String()),
		slog.String("word_id", wordID.String()),
		slog.String("bucket", string(result.Bucket)),
		slog.Float64("score", result.Score))

	return &PracticeResult{
		Session:           session,
		Score:             result.Score,
		Level:             result.Level,
		Suggestion:        result.Suggestion,
		CorrectedSentence: result.CorrectedSentence,
	}, nil
}
