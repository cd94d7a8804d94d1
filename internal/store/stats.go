package store

import (
	"context"

	"github.com/BigBug273/daily-vocab/internal/domain"
)

// StatsStore defines the read-only aggregate queries over the practice log.
// All methods are safe to call concurrently.
type StatsStore interface {
	// AverageScore returns the unrounded mean score over all sessions, or 0
	// when there are none.
	AverageScore(ctx context.Context) (float64, error)

	// CountDistinctPracticedWords returns the number of distinct words that
	// appear in the practice log.
	CountDistinctPracticedWords(ctx context.Context) (int, error)

	// CountSessionsByLevel returns the number of sessions per difficulty level
	// of the practiced word. Levels without sessions may be absent.
	CountSessionsByLevel(ctx context.Context) (map[domain.DifficultyLevel]int, error)

	// ListRecentSessions returns at most limit sessions joined with their word
	// text, newest first. A null score reads as 0 and a null feedback as "".
	ListRecentSessions(ctx context.Context, limit int) ([]domain.HistoryItem, error)
}
