package main

import (
	"fmt"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/config"
	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/BigBug273/daily-vocab/internal/platform/sqlstore"
)

// loadAppConfig loads configuration and sets up the default logger. Extra
// config directories replace the default search path when given.
func loadAppConfig(configDirs []string) (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if len(configDirs) > 0 {
		cfg, err = config.LoadFrom(configDirs...)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("database_url", sqlstore.MaskDatabaseURL(cfg.Database.URL)))

	return cfg, log, nil
}
