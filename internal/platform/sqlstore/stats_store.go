package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// StatsStore implements store.StatsStore.
type StatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.StatsStore = (*StatsStore)(nil)

// NewStatsStore creates a StatsStore over db.
func NewStatsStore(db store.DBTX, logger *slog.Logger) *StatsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// AverageScore implements store.StatsStore.AverageScore.
func (s *StatsStore) AverageScore(ctx context.Context) (float64, error) {
	query, args, err := builder(s.db).
		Select("AVG(score)").
		From("practice_sessions").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build average score query: %w", err)
	}

	var avg sql.NullFloat64
	if err := s.db.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, store.NewStoreError("practice_session", "average_score", "query failed", MapError(err))
	}
	return avg.Float64, nil
}

// CountDistinctPracticedWords implements store.StatsStore.CountDistinctPracticedWords.
func (s *StatsStore) CountDistinctPracticedWords(ctx context.Context) (int, error) {
	query, args, err := builder(s.db).
		Select("COUNT(DISTINCT word_id)").
		From("practice_sessions").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build distinct words query: %w", err)
	}

	var n int
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, store.NewStoreError("practice_session", "count_practiced_words", "query failed", MapError(err))
	}
	return n, nil
}

type levelCountRow struct {
	Level domain.DifficultyLevel `db:"difficulty_level"`
	Count int                    `db:"session_count"`
}

// CountSessionsByLevel implements store.StatsStore.CountSessionsByLevel.
func (s *StatsStore) CountSessionsByLevel(ctx context.Context) (map[domain.DifficultyLevel]int, error) {
	query, args, err := builder(s.db).
		Select("w.difficulty_level AS difficulty_level", "COUNT(*) AS session_count").
		From("practice_sessions ps").
		Join("words w ON w.id = ps.word_id").
		GroupBy("w.difficulty_level").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build level distribution query: %w", err)
	}

	var rows []levelCountRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, store.NewStoreError("practice_session", "count_by_level", "query failed", MapError(err))
	}

	return lo.SliceToMap(rows, func(r levelCountRow) (domain.DifficultyLevel, int) {
		return r.Level, r.Count
	}), nil
}

type historyRow struct {
	ID           uuid.UUID       `db:"id"`
	Word         string          `db:"word"`
	UserSentence string          `db:"user_sentence"`
	Score        sql.NullFloat64 `db:"score"`
	Feedback     sql.NullString  `db:"feedback"`
	PracticedAt  time.Time       `db:"practiced_at"`
}

// ListRecentSessions implements store.StatsStore.ListRecentSessions.
func (s *StatsStore) ListRecentSessions(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if limit < 1 {
		return []domain.HistoryItem{}, nil
	}

	query, args, err := builder(s.db).
		Select(
			"ps.id AS id",
			"w.word AS word",
			"ps.user_sentence AS user_sentence",
			"ps.score AS score",
			"ps.feedback AS feedback",
			"ps.practiced_at AS practiced_at",
		).
		From("practice_sessions ps").
		Join("words w ON w.id = ps.word_id").
		OrderBy("ps.practiced_at DESC", "ps.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	var rows []historyRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		s.logger.Error("failed to list practice history",
			slog.Int("limit", limit),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("practice_session", "history", "query failed", MapError(err))
	}

	return lo.Map(rows, func(r historyRow, _ int) domain.HistoryItem {
		return domain.HistoryItem{
			ID:           r.ID,
			Word:         r.Word,
			UserSentence: r.UserSentence,
			Score:        r.Score.Float64,
			Feedback:     r.Feedback.String,
			PracticedAt:  r.PracticedAt.UTC(),
		}
	}), nil
}
