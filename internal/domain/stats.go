package domain

import (
	"time"

	"github.com/google/uuid"
)

// LevelDistribution counts practice sessions per difficulty level.
type LevelDistribution map[DifficultyLevel]int

// NewLevelDistribution returns a distribution containing every canonical
// level. Counts present in rows are copied in; unknown levels in rows are kept
// as well so nothing stored is silently dropped.
func NewLevelDistribution(rows map[DifficultyLevel]int) LevelDistribution {
	dist := make(LevelDistribution, len(DifficultyLevels()))
	for _, level := range DifficultyLevels() {
		dist[level] = 0
	}
	for level, count := range rows {
		dist[level] = count
	}
	return dist
}

// Total returns the sum of all counts.
func (d LevelDistribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// PracticeSummary is the aggregate view over the practice log.
type PracticeSummary struct {
	AverageScore        float64           `json:"average_score"`
	TotalWordsPracticed int               `json:"total_words_practiced"`
	LevelDistribution   LevelDistribution `json:"level_distribution"`
}

// HistoryItem is one practice session resolved against its word at read time.
type HistoryItem struct {
	ID           uuid.UUID `json:"id"`
	Word         string    `json:"word"`
	UserSentence string    `json:"user_sentence"`
	Score        float64   `json:"score"`
	Feedback     string    `json:"feedback"`
	PracticedAt  time.Time `json:"practiced_at"`
}
