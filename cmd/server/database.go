package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/config"
	"github.com/BigBug273/daily-vocab/internal/platform/sqlstore"
	"github.com/jmoiron/sqlx"
)

// setupAppDatabase opens the configured database and, when auto_migrate is
// set, applies pending migrations.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          cfg.Driver,
		URL:             cfg.URL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	}, logger)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		m, err := sqlstore.NewMigrator(db, logger)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if err := m.Up(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("auto-migrate failed: %w", err)
		}
	}

	return db, nil
}
