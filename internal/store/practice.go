package store

import (
	"context"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/jmoiron/sqlx"
)

// PracticeStore defines the interface for the append-only practice log.
type PracticeStore interface {
	// Append records a new practice session. The store assigns the ID and
	// PracticedAt fields; the caller's value is not modified and the
	// populated copy is returned.
	// Returns ErrWordNotFound if session.WordID references no word.
	// Returns domain validation errors if the session is invalid.
	Append(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error)

	// WithTx returns a PracticeStore bound to the given transaction.
	WithTx(tx *sqlx.Tx) PracticeStore
}
