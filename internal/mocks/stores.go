package mocks

import (
	"context"
	"sync"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// MockWordStore implements store.WordStore.
type MockWordStore struct {
	RandomWordFn func(ctx context.Context) (*domain.Word, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	CreateManyFn func(ctx context.Context, words []*domain.Word) (int, error)
	CountFn      func(ctx context.Context) (int, error)

	Word *domain.Word
	Err  error

	mu           sync.Mutex
	WithTxCalls  int
	CreatedWords []*domain.Word
}

var _ store.WordStore = (*MockWordStore)(nil)

// RandomWord implements store.WordStore.
func (m *MockWordStore) RandomWord(ctx context.Context) (*domain.Word, error) {
	if m.RandomWordFn != nil {
		return m.RandomWordFn(ctx)
	}
	return m.Word, m.Err
}

// GetByID implements store.WordStore.
func (m *MockWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Word, m.Err
}

// CreateMany implements store.WordStore and records the words it receives.
func (m *MockWordStore) CreateMany(ctx context.Context, words []*domain.Word) (int, error) {
	m.mu.Lock()
	m.CreatedWords = append(m.CreatedWords, words...)
	m.mu.Unlock()

	if m.CreateManyFn != nil {
		return m.CreateManyFn(ctx, words)
	}
	if m.Err != nil {
		return 0, m.Err
	}
	return len(words), nil
}

// Count implements store.WordStore.
func (m *MockWordStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.CreatedWords), m.Err
}

// WithTx implements store.WordStore. It returns the same mock.
func (m *MockWordStore) WithTx(_ *sqlx.Tx) store.WordStore {
	m.mu.Lock()
	m.WithTxCalls++
	m.mu.Unlock()
	return m
}

// MockPracticeStore implements store.PracticeStore.
type MockPracticeStore struct {
	AppendFn func(ctx context.Context, session *domain.PracticeSession) (*domain.PracticeSession, error)

	Err error

	mu          sync.Mutex
	Appended    []*domain.PracticeSession
	WithTxCalls int
}

var _ store.PracticeStore = (*MockPracticeStore)(nil)

// Append implements store.PracticeStore. Without AppendFn it assigns an ID
// and returns a copy of the session.
func (m *MockPracticeStore) Append(
	ctx context.Context,
	session *domain.PracticeSession,
) (*domain.PracticeSession, error) {
	m.mu.Lock()
	m.Appended = append(m.Appended, session)
	m.mu.Unlock()

	if m.AppendFn != nil {
		return m.AppendFn(ctx, session)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	created := *session
	created.ID = uuid.New()
	return &created, nil
}

// WithTx implements store.PracticeStore. It returns the same mock.
func (m *MockPracticeStore) WithTx(_ *sqlx.Tx) store.PracticeStore {
	m.mu.Lock()
	m.WithTxCalls++
	m.mu.Unlock()
	return m
}

// MockStatsStore implements store.StatsStore.
type MockStatsStore struct {
	AverageScoreFn                func(ctx context.Context) (float64, error)
	CountDistinctPracticedWordsFn func(ctx context.Context) (int, error)
	CountSessionsByLevelFn        func(ctx context.Context) (map[domain.DifficultyLevel]int, error)
	ListRecentSessionsFn          func(ctx context.Context, limit int) ([]domain.HistoryItem, error)
}

var _ store.StatsStore = (*MockStatsStore)(nil)

// AverageScore implements store.StatsStore.
func (m *MockStatsStore) AverageScore(ctx context.Context) (float64, error) {
	if m.AverageScoreFn != nil {
		return m.AverageScoreFn(ctx)
	}
	return 0, nil
}

// CountDistinctPracticedWords implements store.StatsStore.
func (m *MockStatsStore) CountDistinctPracticedWords(ctx context.Context) (int, error) {
	if m.CountDistinctPracticedWordsFn != nil {
		return m.CountDistinctPracticedWordsFn(ctx)
	}
	return 0, nil
}

// CountSessionsByLevel implements store.StatsStore.
func (m *MockStatsStore) CountSessionsByLevel(ctx context.Context) (map[domain.DifficultyLevel]int, error) {
	if m.CountSessionsByLevelFn != nil {
		return m.CountSessionsByLevelFn(ctx)
	}
	return map[domain.DifficultyLevel]int{}, nil
}

// ListRecentSessions implements store.StatsStore.
func (m *MockStatsStore) ListRecentSessions(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if m.ListRecentSessionsFn != nil {
		return m.ListRecentSessionsFn(ctx, limit)
	}
	return []domain.HistoryItem{}, nil
}

// MockTransactor implements store.Transactor by calling fn with a nil
// transaction. Mock stores ignore the transaction they are bound to.
type MockTransactor struct {
	// Err, when set, is returned instead of running fn.
	Err error

	mu    sync.Mutex
	Calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTx implements store.Transactor.
func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}
