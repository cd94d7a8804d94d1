package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PracticeStore implements store.PracticeStore.
type PracticeStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

var _ store.PracticeStore = (*PracticeStore)(nil)

// NewPracticeStore creates a PracticeStore over db.
func NewPracticeStore(db store.DBTX, logger *slog.Logger) *PracticeStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeStore{
		db:     db,
		logger: logger.With(slog.String("component", "practice_store")),
		now:    time.Now,
	}
}

// WithTx implements store.PracticeStore.WithTx.
func (s *PracticeStore) WithTx(tx *sqlx.Tx) store.PracticeStore {
	return &PracticeStore{db: tx, logger: s.logger, now: s.now}
}

// Append implements store.PracticeStore.Append.
func (s *PracticeStore) Append(
	ctx context.Context,
	session *domain.PracticeSession,
) (*domain.PracticeSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if session == nil {
		return nil, fmt.Errorf("%w: practice session is nil", store.ErrInvalidEntity)
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate practice session id: %w", err)
	}

	created := *session
	created.ID = id
	created.Score = domain.RoundScore(session.Score)
	// Postgres keeps microseconds; truncate so the returned value matches
	// what a later read sees.
	created.PracticedAt = s.now().UTC().Truncate(time.Microsecond)

	query, args, err := builder(s.db).
		Insert("practice_sessions").
		Columns("id", "word_id", "user_sentence", "score", "feedback", "corrected_sentence", "practiced_at").
		Values(
			created.ID,
			created.WordID,
			created.UserSentence,
			created.Score,
			created.Feedback,
			created.CorrectedSentence,
			created.PracticedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build practice session insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("practice session references unknown word",
				slog.String("word_id", created.WordID.String()))
			return nil, store.NewStoreError("practice_session", "append", "unknown word_id", store.ErrWordNotFound)
		}
		log.Error("failed to insert practice session",
			slog.String("word_id", created.WordID.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("practice_session", "append", "insert failed", MapError(err))
	}

	log.Debug("practice session recorded",
		slog.String("session_id", created.ID.String()),
		slog.String("word_id", created.WordID.String()),
		slog.Float64("score", created.Score))
	return &created, nil
}
