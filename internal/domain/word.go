package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DifficultyLevel is the difficulty of a vocabulary word.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "Beginner"
	DifficultyIntermediate DifficultyLevel = "Intermediate"
	DifficultyAdvanced     DifficultyLevel = "Advanced"
)

// DifficultyLevels returns the canonical levels in ascending order.
// A fresh slice is returned on every call.
func DifficultyLevels() []DifficultyLevel {
	return []DifficultyLevel{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// IsValid reports whether d is one of the canonical levels.
func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// ParseDifficultyLevel matches s case-insensitively against the canonical
// levels, ignoring surrounding whitespace.
func ParseDifficultyLevel(s string) (DifficultyLevel, error) {
	trimmed := strings.TrimSpace(s)
	for _, level := range DifficultyLevels() {
		if strings.EqualFold(trimmed, string(level)) {
			return level, nil
		}
	}
	return "", NewValidationError("difficulty_level", "must be Beginner, Intermediate or Advanced", ErrInvalidDifficulty)
}

// Word is a vocabulary entry. Words are immutable once stored.
type Word struct {
	ID              uuid.UUID       `json:"id"               db:"id"`
	Word            string          `json:"word"             db:"word"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" db:"difficulty_level"`
}

// NewWord creates a Word with a fresh ID after trimming the text.
func NewWord(text string, level DifficultyLevel) (*Word, error) {
	w := &Word{
		ID:              uuid.New(),
		Word:            strings.TrimSpace(text),
		DifficultyLevel: level,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks if the Word has valid data.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(w.Word) == "" {
		return NewValidationError("word", "cannot be empty", ErrEmptyContent)
	}
	if !w.DifficultyLevel.IsValid() {
		return NewValidationError("difficulty_level", "must be Beginner, Intermediate or Advanced", ErrInvalidDifficulty)
	}
	return nil
}
