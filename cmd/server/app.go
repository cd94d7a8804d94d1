package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/config"
	"github.com/BigBug273/daily-vocab/internal/domain/scoring"
	"github.com/BigBug273/daily-vocab/internal/platform/metrics"
	"github.com/BigBug273/daily-vocab/internal/platform/sqlstore"
	"github.com/BigBug273/daily-vocab/internal/service"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/jmoiron/sqlx"
)

// application holds the shared dependencies of the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sqlx.DB
	metrics *metrics.Metrics

	wordStore     store.WordStore
	practiceStore store.PracticeStore
	statsStore    store.StatsStore

	wordService     service.WordService
	practiceService service.PracticeService
	statsService    service.StatsService
}

// newApplication wires stores and services over an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
	}

	app.wordStore = sqlstore.NewWordStore(db, logger)
	app.practiceStore = sqlstore.NewPracticeStore(db, logger)
	app.statsStore = sqlstore.NewStatsStore(db, logger)

	var err error
	app.wordService, err = service.NewWordService(app.wordStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create word service: %w", err)
	}

	app.practiceService, err = service.NewPracticeService(
		store.NewTransactor(db),
		app.wordStore,
		app.practiceStore,
		scoring.NewDefaultScorer(),
		app.metrics,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create practice service: %w", err)
	}

	app.statsService, err = service.NewStatsService(app.statsStore, service.HistoryLimits{
		Default: cfg.History.DefaultLimit,
		Max:     cfg.History.MaxLimit,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
