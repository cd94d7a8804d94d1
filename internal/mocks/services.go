package mocks

import (
	"context"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/service"
	"github.com/google/uuid"
)

// MockWordService implements service.WordService.
type MockWordService struct {
	RandomWordFn func(ctx context.Context) (*domain.Word, error)
}

var _ service.WordService = (*MockWordService)(nil)

// RandomWord implements service.WordService.
func (m *MockWordService) RandomWord(ctx context.Context) (*domain.Word, error) {
	if m.RandomWordFn != nil {
		return m.RandomWordFn(ctx)
	}
	return nil, nil
}

// MockPracticeService implements service.PracticeService.
type MockPracticeService struct {
	ValidateSentenceFn func(ctx context.Context, wordID uuid.UUID, sentence string) (*service.PracticeResult, error)
}

var _ service.PracticeService = (*MockPracticeService)(nil)

// ValidateSentence implements service.PracticeService.
func (m *MockPracticeService) ValidateSentence(
	ctx context.Context,
	wordID uuid.UUID,
	sentence string,
) (*service.PracticeResult, error) {
	if m.ValidateSentenceFn != nil {
		return m.ValidateSentenceFn(ctx, wordID, sentence)
	}
	return nil, nil
}

// MockStatsService implements service.StatsService.
type MockStatsService struct {
	SummaryFn func(ctx context.Context) (*domain.PracticeSummary, error)
	HistoryFn func(ctx context.Context, limit int) ([]domain.HistoryItem, error)

	// DefaultLimit is returned by DefaultHistoryLimit; zero means 50.
	DefaultLimit int
}

var _ service.StatsService = (*MockStatsService)(nil)

// Summary implements service.StatsService.
func (m *MockStatsService) Summary(ctx context.Context) (*domain.PracticeSummary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx)
	}
	return &domain.PracticeSummary{LevelDistribution: domain.NewLevelDistribution(nil)}, nil
}

// History implements service.StatsService.
func (m *MockStatsService) History(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, limit)
	}
	return []domain.HistoryItem{}, nil
}

// DefaultHistoryLimit implements service.StatsService.
func (m *MockStatsService) DefaultHistoryLimit() int {
	if m.DefaultLimit == 0 {
		return service.DefaultHistoryLimit
	}
	return m.DefaultLimit
}
