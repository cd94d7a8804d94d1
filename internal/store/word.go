package store

import (
	"context"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// WordStore defines the interface for the vocabulary catalog.
type WordStore interface {
	// RandomWord returns one word chosen uniformly at random.
	// Returns ErrWordNotFound if the store holds no words.
	RandomWord(ctx context.Context) (*domain.Word, error)

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// CreateMany inserts the given words, silently skipping any whose
	// (word, difficulty_level) pair already exists. It returns the number of
	// rows actually inserted. Run it inside RunInTransaction for atomicity.
	CreateMany(ctx context.Context, words []*domain.Word) (int, error)

	// Count returns the number of words in the catalog.
	Count(ctx context.Context) (int, error)

	// WithTx returns a WordStore bound to the given transaction.
	WithTx(tx *sqlx.Tx) WordStore
}
