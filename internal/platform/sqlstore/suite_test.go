package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises every store against databases built by newDB. It
// runs for SQLite in the default test build and for PostgreSQL under the
// integration tag.
func runStoreSuite(t *testing.T, newDB dbFactory) {
	t.Run("WordStore", func(t *testing.T) { testWordStore(t, newDB) })
	t.Run("PracticeStore", func(t *testing.T) { testPracticeStore(t, newDB) })
	t.Run("StatsStore", func(t *testing.T) { testStatsStore(t, newDB) })
}

func testWordStore(t *testing.T, newDB dbFactory) {
	ctx := context.Background()

	t.Run("random word on empty store", func(t *testing.T) {
		words := NewWordStore(newDB(t), discardLogger())

		_, err := words.RandomWord(ctx)
		assert.ErrorIs(t, err, store.ErrWordNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("random word covers the catalog", func(t *testing.T) {
		db := newDB(t)
		catalog := []*domain.Word{
			mustWord(t, "cat", domain.DifficultyBeginner),
			mustWord(t, "meticulous", domain.DifficultyIntermediate),
			mustWord(t, "serendipity", domain.DifficultyAdvanced),
		}
		seedWords(t, db, catalog...)
		words := NewWordStore(db, discardLogger())

		seen := map[uuid.UUID]bool{}
		for i := 0; i < 200; i++ {
			w, err := words.RandomWord(ctx)
			require.NoError(t, err)
			seen[w.ID] = true
		}

		for _, w := range catalog {
			assert.True(t, seen[w.ID], "word %q was never selected", w.Word)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		db := newDB(t)
		want := mustWord(t, "cat", domain.DifficultyBeginner)
		seedWords(t, db, want)
		words := NewWordStore(db, discardLogger())

		got, err := words.GetByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = words.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrWordNotFound)
	})

	t.Run("create many skips duplicates", func(t *testing.T) {
		words := NewWordStore(newDB(t), discardLogger())

		n, err := words.CreateMany(ctx, []*domain.Word{
			mustWord(t, "cat", domain.DifficultyBeginner),
			mustWord(t, "dog", domain.DifficultyBeginner),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = words.CreateMany(ctx, []*domain.Word{
			mustWord(t, "cat", domain.DifficultyBeginner),
			mustWord(t, "cat", domain.DifficultyAdvanced),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		count, err := words.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("create many in batches", func(t *testing.T) {
		words := NewWordStore(newDB(t), discardLogger())

		batch := make([]*domain.Word, 0, insertBatchSize+25)
		for i := 0; i < insertBatchSize+25; i++ {
			batch = append(batch, mustWord(t, "word-"+uuid.NewString(), domain.DifficultyIntermediate))
		}

		n, err := words.CreateMany(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, len(batch), n)
	})

	t.Run("create many rejects invalid words", func(t *testing.T) {
		words := NewWordStore(newDB(t), discardLogger())

		bad := &domain.Word{ID: uuid.New(), Word: "cat", DifficultyLevel: "Expert"}
		_, err := words.CreateMany(ctx, []*domain.Word{bad})
		assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)

		count, err := words.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("create many rolls back with the transaction", func(t *testing.T) {
		db := newDB(t)
		words := NewWordStore(db, discardLogger())

		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := words.WithTx(tx).CreateMany(ctx, []*domain.Word{
				mustWord(t, "cat", domain.DifficultyBeginner),
			}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		count, err := words.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func testPracticeStore(t *testing.T, newDB dbFactory) {
	ctx := context.Background()

	t.Run("append assigns id and timestamp", func(t *testing.T) {
		db := newDB(t)
		word := mustWord(t, "cat", domain.DifficultyBeginner)
		seedWords(t, db, word)
		practice := NewPracticeStore(db, discardLogger())

		input := mustSession(t, word.ID, "I saw a cat in the garden today", 7.46)
		before := time.Now().UTC().Add(-time.Second)

		got, err := practice.Append(ctx, input)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, uuid.Version(7), got.ID.Version())
		assert.True(t, got.PracticedAt.After(before))
		assert.Equal(t, 7.5, got.Score)
		assert.Equal(t, word.ID, got.WordID)

		assert.Equal(t, uuid.Nil, input.ID, "input must not be mutated")
		assert.True(t, input.PracticedAt.IsZero(), "input must not be mutated")
	})

	t.Run("append with unknown word", func(t *testing.T) {
		db := newDB(t)
		seedWords(t, db, mustWord(t, "cat", domain.DifficultyBeginner))
		practice := NewPracticeStore(db, discardLogger())

		_, err := practice.Append(ctx, mustSession(t, uuid.New(), "a sentence", 5))
		assert.ErrorIs(t, err, store.ErrWordNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "practice_session", storeErr.Entity)
		assert.Equal(t, "append", storeErr.Operation)

		assert.Zero(t, countSessions(t, db), "no session should be persisted")
	})

	t.Run("append rejects invalid sessions", func(t *testing.T) {
		db := newDB(t)
		word := mustWord(t, "cat", domain.DifficultyBeginner)
		seedWords(t, db, word)
		practice := NewPracticeStore(db, discardLogger())

		_, err := practice.Append(ctx, &domain.PracticeSession{WordID: word.ID, UserSentence: "x", Score: 11})
		assert.ErrorIs(t, err, domain.ErrScoreOutOfRange)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("practiced_at is non-decreasing", func(t *testing.T) {
		db := newDB(t)
		word := mustWord(t, "cat", domain.DifficultyBeginner)
		seedWords(t, db, word)
		practice := NewPracticeStore(db, discardLogger())

		var last time.Time
		for i := 0; i < 5; i++ {
			got, err := practice.Append(ctx, mustSession(t, word.ID, "the cat sat", 6))
			require.NoError(t, err)
			assert.False(t, got.PracticedAt.Before(last))
			last = got.PracticedAt
		}
	})
}

func testStatsStore(t *testing.T, newDB dbFactory) {
	ctx := context.Background()

	t.Run("empty log", func(t *testing.T) {
		stats := NewStatsStore(newDB(t), discardLogger())

		avg, err := stats.AverageScore(ctx)
		require.NoError(t, err)
		assert.Zero(t, avg)

		n, err := stats.CountDistinctPracticedWords(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		levels, err := stats.CountSessionsByLevel(ctx)
		require.NoError(t, err)
		assert.Empty(t, levels)

		history, err := stats.ListRecentSessions(ctx, 50)
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})

	t.Run("aggregates", func(t *testing.T) {
		db := newDB(t)
		cat := mustWord(t, "cat", domain.DifficultyBeginner)
		ephemeral := mustWord(t, "ephemeral", domain.DifficultyAdvanced)
		seedWords(t, db, cat, ephemeral)

		practice := NewPracticeStore(db, discardLogger())
		for _, s := range []*domain.PracticeSession{
			mustSession(t, cat.ID, "the cat", 6.0),
			mustSession(t, cat.ID, "the cat sat on the mat", 8.0),
			mustSession(t, ephemeral.ID, "fame is ephemeral", 6.0),
		} {
			_, err := practice.Append(ctx, s)
			require.NoError(t, err)
		}

		stats := NewStatsStore(db, discardLogger())

		avg, err := stats.AverageScore(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 6.6667, avg, 0.001)

		n, err := stats.CountDistinctPracticedWords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		levels, err := stats.CountSessionsByLevel(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[domain.DifficultyLevel]int{
			domain.DifficultyBeginner: 2,
			domain.DifficultyAdvanced: 1,
		}, levels)
	})

	t.Run("history order and limit", func(t *testing.T) {
		db := newDB(t)
		cat := mustWord(t, "cat", domain.DifficultyBeginner)
		meticulous := mustWord(t, "meticulous", domain.DifficultyIntermediate)
		serendipity := mustWord(t, "serendipity", domain.DifficultyAdvanced)
		seedWords(t, db, cat, meticulous, serendipity)

		practice := NewPracticeStore(db, discardLogger())
		practice.now = steppingClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), time.Minute)

		var appended []*domain.PracticeSession
		for _, s := range []*domain.PracticeSession{
			mustSession(t, cat.ID, "the cat naps", 7),
			mustSession(t, meticulous.ID, "a meticulous plan", 7),
			mustSession(t, serendipity.ID, "pure serendipity", 7),
		} {
			got, err := practice.Append(ctx, s)
			require.NoError(t, err)
			appended = append(appended, got)
		}

		stats := NewStatsStore(db, discardLogger())

		history, err := stats.ListRecentSessions(ctx, 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, appended[2].ID, history[0].ID)
		assert.Equal(t, appended[1].ID, history[1].ID)
		assert.Equal(t, "serendipity", history[0].Word)
		assert.Equal(t, "pure serendipity", history[0].UserSentence)
		assert.Equal(t, "meticulous", history[1].Word)
		assert.Equal(t, "a meticulous plan", history[1].UserSentence)
		assert.True(t, appended[2].PracticedAt.Equal(history[0].PracticedAt))

		all, err := stats.ListRecentSessions(ctx, 50)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("history breaks timestamp ties by id", func(t *testing.T) {
		db := newDB(t)
		cat := mustWord(t, "cat", domain.DifficultyBeginner)
		seedWords(t, db, cat)

		practice := NewPracticeStore(db, discardLogger())
		fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		practice.now = func() time.Time { return fixed }

		first, err := practice.Append(ctx, mustSession(t, cat.ID, "first cat", 7))
		require.NoError(t, err)
		second, err := practice.Append(ctx, mustSession(t, cat.ID, "second cat", 7))
		require.NoError(t, err)

		history, err := NewStatsStore(db, discardLogger()).ListRecentSessions(ctx, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)

		newer, older := second.ID, first.ID
		if first.ID.String() > second.ID.String() {
			newer, older = first.ID, second.ID
		}
		assert.Equal(t, newer, history[0].ID)
		assert.Equal(t, older, history[1].ID)
	})

	t.Run("history reads null score and feedback as zero values", func(t *testing.T) {
		db := newDB(t)
		cat := mustWord(t, "cat", domain.DifficultyBeginner)
		seedWords(t, db, cat)

		query, args, err := builder(db).
			Insert("practice_sessions").
			Columns("id", "word_id", "user_sentence", "practiced_at").
			Values(uuid.New(), cat.ID, "legacy cat", time.Now().UTC()).
			ToSql()
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, query, args...)
		require.NoError(t, err)

		history, err := NewStatsStore(db, discardLogger()).ListRecentSessions(ctx, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Zero(t, history[0].Score)
		assert.Empty(t, history[0].Feedback)
	})

	t.Run("non-positive limit returns nothing", func(t *testing.T) {
		history, err := NewStatsStore(newDB(t), discardLogger()).ListRecentSessions(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
