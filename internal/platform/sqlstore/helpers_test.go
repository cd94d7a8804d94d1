package sqlstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// dbFactory returns an empty, fully migrated database for one test.
type dbFactory func(t *testing.T) *sqlx.DB

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSQLiteDB opens a private in-memory SQLite database with the embedded
// migrations applied.
func newSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, Config{Driver: "sqlite3", URL: ":memory:"}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := NewMigrator(db, discardLogger())
	require.NoError(t, err)
	require.NoError(t, m.Up(ctx))

	return db
}

func seedWords(t *testing.T, db *sqlx.DB, words ...*domain.Word) {
	t.Helper()

	_, err := NewWordStore(db, discardLogger()).CreateMany(context.Background(), words)
	require.NoError(t, err)
}

func mustWord(t *testing.T, text string, level domain.DifficultyLevel) *domain.Word {
	t.Helper()

	w, err := domain.NewWord(text, level)
	require.NoError(t, err)
	return w
}

func mustSession(t *testing.T, wordID uuid.UUID, sentence string, score float64) *domain.PracticeSession {
	t.Helper()

	s, err := domain.NewPracticeSession(wordID, sentence, score, "feedback", sentence)
	require.NoError(t, err)
	return s
}

// countSessions returns the number of rows in practice_sessions.
func countSessions(t *testing.T, db *sqlx.DB) int {
	t.Helper()

	var n int
	require.NoError(t, db.GetContext(context.Background(), &n, "SELECT COUNT(*) FROM practice_sessions"))
	return n
}

// steppingClock returns a clock that advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}
