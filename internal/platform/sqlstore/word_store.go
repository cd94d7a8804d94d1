package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// insertBatchSize keeps multi-row inserts well under SQLite's bound
// parameter limit.
const insertBatchSize = 300

var wordColumns = []string{"id", "word", "difficulty_level"}

// WordStore implements store.WordStore.
type WordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.WordStore = (*WordStore)(nil)

// NewWordStore creates a WordStore over db.
func NewWordStore(db store.DBTX, logger *slog.Logger) *WordStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// WithTx implements store.WordStore.WithTx.
func (s *WordStore) WithTx(tx *sqlx.Tx) store.WordStore {
	return &WordStore{db: tx, logger: s.logger}
}

// RandomWord implements store.WordStore.RandomWord.
func (s *WordStore) RandomWord(ctx context.Context) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := builder(s.db).
		Select(wordColumns...).
		From("words").
		OrderBy("RANDOM()").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build random word query: %w", err)
	}

	var word domain.Word
	if err := s.db.GetContext(ctx, &word, query, args...); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("no words available")
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to select random word", slog.String("error", err.Error()))
		return nil, store.NewStoreError("word", "random", "select failed", mapped)
	}

	return &word, nil
}

// GetByID implements store.WordStore.GetByID.
func (s *WordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := builder(s.db).
		Select(wordColumns...).
		From("words").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word lookup query: %w", err)
	}

	var word domain.Word
	if err := s.db.GetContext(ctx, &word, query, args...); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("word not found", slog.String("word_id", id.String()))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word",
			slog.String("word_id", id.String()),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("word", "get", "select "+id.String()+" failed", mapped)
	}

	return &word, nil
}

// CreateMany implements store.WordStore.CreateMany.
func (s *WordStore) CreateMany(ctx context.Context, words []*domain.Word) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i, w := range words {
		if w == nil {
			return 0, fmt.Errorf("%w: word %d is nil", store.ErrInvalidEntity, i)
		}
		if err := w.Validate(); err != nil {
			return 0, fmt.Errorf("word %d: %w", i, err)
		}
	}

	inserted := 0
	for start := 0; start < len(words); start += insertBatchSize {
		end := min(start+insertBatchSize, len(words))

		insert := builder(s.db).
			Insert("words").
			Columns(wordColumns...).
			Suffix("ON CONFLICT (word, difficulty_level) DO NOTHING")
		for _, w := range words[start:end] {
			insert = insert.Values(w.ID, w.Word, string(w.DifficultyLevel))
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build word insert: %w", err)
		}

		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			log.Error("failed to insert words", slog.String("error", err.Error()))
			return inserted, store.NewStoreError("word", "create_many", "insert failed", MapError(err))
		}

		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("insert words: rows affected: %w", err)
		}
		inserted += int(n)
	}

	log.Debug("words inserted",
		slog.Int("requested", len(words)),
		slog.Int("inserted", inserted))
	return inserted, nil
}

// Count implements store.WordStore.Count.
func (s *WordStore) Count(ctx context.Context) (int, error) {
	query, args, err := builder(s.db).Select("COUNT(*)").From("words").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build word count query: %w", err)
	}

	var n int
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, store.NewStoreError("word", "count", "select failed", MapError(err))
	}
	return n, nil
}
