package mocks

import (
	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/domain/scoring"
)

// MockScorer implements scoring.Scorer.
type MockScorer struct {
	ScoreFn func(sentence, targetWord string, difficulty domain.DifficultyLevel) scoring.Result

	// Result is returned when ScoreFn is nil; Level and CorrectedSentence are
	// filled from the call when left empty.
	Result scoring.Result
}

var _ scoring.Scorer = (*MockScorer)(nil)

// Score implements scoring.Scorer.
func (m *MockScorer) Score(sentence, targetWord string, difficulty domain.DifficultyLevel) scoring.Result {
	if m.ScoreFn != nil {
		return m.ScoreFn(sentence, targetWord, difficulty)
	}
	r := m.Result
	if r.Level == "" {
		r.Level = difficulty
	}
	if r.CorrectedSentence == "" {
		r.CorrectedSentence = sentence
	}
	return r
}
