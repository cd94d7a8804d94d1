package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/store"
	"golang.org/x/sync/errgroup"
)

// DefaultHistoryLimit is the page size used when the configuration leaves it
// unset.
const DefaultHistoryLimit = 50

// HistoryLimits configures the history page size. Max is an optional cap;
// zero leaves limits uncapped.
type HistoryLimits struct {
	Default int
	Max     int
}

// StatsService summarizes the practice log.
type StatsService interface {
	// Summary returns the average score, the number of distinct practiced
	// words and the per-level session counts.
	Summary(ctx context.Context) (*domain.PracticeSummary, error)

	// History returns at most limit sessions, newest first. A limit of 0
	// yields an empty list and a negative limit fails with ErrInvalidLimit.
	// When a cap is configured, larger limits are clamped to it.
	History(ctx context.Context, limit int) ([]domain.HistoryItem, error)

	// DefaultHistoryLimit is the page size to use when the caller has none.
	DefaultHistoryLimit() int
}

type statsServiceImpl struct {
	stats  store.StatsStore
	limits HistoryLimits
	logger *slog.Logger
}

// NewStatsService creates a StatsService. A zero default falls back to
// DefaultHistoryLimit.
func NewStatsService(stats store.StatsStore, limits HistoryLimits, logger *slog.Logger) (StatsService, error) {
	if stats == nil {
		return nil, domain.NewValidationError("stats", "cannot be nil", domain.ErrValidation)
	}
	if limits.Default <= 0 {
		limits.Default = DefaultHistoryLimit
	}
	if limits.Max < 0 {
		return nil, domain.NewValidationError("limits", "max cannot be negative", domain.ErrValidation)
	}
	if limits.Max > 0 && limits.Max < limits.Default {
		return nil, domain.NewValidationError(
			"limits",
			fmt.Sprintf("max %d is below default %d", limits.Max, limits.Default),
			domain.ErrValidation,
		)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &statsServiceImpl{
		stats:  stats,
		limits: limits,
		logger: logger.With(slog.String("component", "stats_service")),
	}, nil
}

// Summary implements StatsService.Summary. The three aggregates are queried
// concurrently.
func (s *statsServiceImpl) Summary(ctx context.Context) (*domain.PracticeSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		avg    float64
		total  int
		levels map[domain.DifficultyLevel]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		avg, err = s.stats.AverageScore(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.stats.CountDistinctPracticedWords(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		levels, err = s.stats.CountSessionsByLevel(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to build practice summary", slog.String("error", err.Error()))
		return nil, NewServiceError("stats", "summary", err)
	}

	return &domain.PracticeSummary{
		AverageScore:        domain.RoundAverage(avg),
		TotalWordsPracticed: total,
		LevelDistribution:   domain.NewLevelDistribution(levels),
	}, nil
}

// History implements StatsService.History.
func (s *statsServiceImpl) History(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit < 0 {
		return nil, domain.NewValidationError("limit", "cannot be negative", ErrInvalidLimit)
	}
	if limit == 0 {
		return []domain.HistoryItem{}, nil
	}
	if s.limits.Max > 0 && limit > s.limits.Max {
		log.Debug("clamping history limit",
			slog.Int("requested", limit),
			slog.Int("max", s.limits.Max))
		limit = s.limits.Max
	}

	items, err := s.stats.ListRecentSessions(ctx, limit)
	if err != nil {
		log.Error("failed to list practice history", slog.String("error", err.Error()))
		return nil, NewServiceError("stats", "history", err)
	}
	if items == nil {
		items = []domain.HistoryItem{}
	}
	return items, nil
}

// DefaultHistoryLimit implements StatsService.DefaultHistoryLimit.
func (s *statsServiceImpl) DefaultHistoryLimit() int {
	return s.limits.Default
}
