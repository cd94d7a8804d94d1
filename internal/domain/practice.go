package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Score bounds shared by the scorer, the store and the database CHECK constraint.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// PracticeSession is one scored attempt at using a word in a sentence.
// Sessions are append-only: once stored they are never updated or deleted.
type PracticeSession struct {
	ID                uuid.UUID `json:"id"                 db:"id"`
	WordID            uuid.UUID `json:"word_id"            db:"word_id"`
	UserSentence      string    `json:"user_sentence"      db:"user_sentence"`
	Score             float64   `json:"score"              db:"score"`
	Feedback          string    `json:"feedback"           db:"feedback"`
	CorrectedSentence string    `json:"corrected_sentence" db:"corrected_sentence"`
	PracticedAt       time.Time `json:"practiced_at"       db:"practiced_at"`
}

// NewPracticeSession builds an unsaved session. ID and PracticedAt stay zero
// until the practice log assigns them on insert. The score is rounded to one
// decimal before validation.
func NewPracticeSession(
	wordID uuid.UUID,
	userSentence string,
	score float64,
	feedback string,
	correctedSentence string,
) (*PracticeSession, error) {
	s := &PracticeSession{
		WordID:            wordID,
		UserSentence:      userSentence,
		Score:             RoundScore(score),
		Feedback:          feedback,
		CorrectedSentence: correctedSentence,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the fields a caller controls. ID and PracticedAt are not
// checked because the store assigns them.
func (s *PracticeSession) Validate() error {
	if s.WordID == uuid.Nil {
		return NewValidationError("word_id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(s.UserSentence) == "" {
		return NewValidationError("user_sentence", "cannot be empty", ErrEmptyContent)
	}
	if math.IsNaN(s.Score) || s.Score < MinScore || s.Score > MaxScore {
		return NewValidationError("score", "must be between 0.0 and 10.0", ErrScoreOutOfRange)
	}
	return nil
}

// RoundScore rounds a score to one decimal place.
func RoundScore(score float64) float64 {
	return roundTo(score, 1)
}

// RoundAverage rounds an aggregate score to two decimal places.
func RoundAverage(avg float64) float64 {
	return roundTo(avg, 2)
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
