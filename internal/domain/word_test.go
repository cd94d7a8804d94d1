package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewWord(t *testing.T) {
	word, err := NewWord("  serendipity ", DifficultyAdvanced)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if word.ID == uuid.Nil {
		t.Error("Expected non-nil word ID")
	}

	if word.Word != "serendipity" {
		t.Errorf("Expected trimmed word %q, got %q", "serendipity", word.Word)
	}

	if word.DifficultyLevel != DifficultyAdvanced {
		t.Errorf("Expected level %s, got %s", DifficultyAdvanced, word.DifficultyLevel)
	}
}

func TestNewWordValidation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		level   DifficultyLevel
		wantErr error
	}{
		{"empty text", "   ", DifficultyBeginner, ErrEmptyContent},
		{"unknown level", "cat", DifficultyLevel("Expert"), ErrInvalidDifficulty},
		{"empty level", "cat", DifficultyLevel(""), ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWord(tt.text, tt.level)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to match ErrValidation, got %v", err)
			}
		})
	}
}

func TestParseDifficultyLevel(t *testing.T) {
	tests := []struct {
		input string
		want  DifficultyLevel
		ok    bool
	}{
		{"Beginner", DifficultyBeginner, true},
		{"intermediate", DifficultyIntermediate, true},
		{" ADVANCED ", DifficultyAdvanced, true},
		{"expert", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseDifficultyLevel(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ParseDifficultyLevel(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("ParseDifficultyLevel(%q) expected ErrInvalidDifficulty, got %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficultyLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDifficultyLevelsIsACopy(t *testing.T) {
	levels := DifficultyLevels()
	levels[0] = "Changed"

	if DifficultyLevels()[0] != DifficultyBeginner {
		t.Error("Expected DifficultyLevels to return a fresh slice")
	}
}
