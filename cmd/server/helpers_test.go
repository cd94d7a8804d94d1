package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/BigBug273/daily-vocab/internal/config"
	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/platform/sqlstore"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "error",
			CORSAllowedOrigins:     []string{"http://localhost:3000"},
			ShutdownTimeoutSeconds: 5,
		},
		Database: config.DatabaseConfig{
			Driver:                 "sqlite3",
			URL:                    ":memory:",
			MaxOpenConns:           1,
			ConnMaxLifetimeMinutes: 5,
			AutoMigrate:            true,
		},
		History: config.HistoryConfig{
			DefaultLimit: 50,
		},
	}
}

// newTestApp returns an application over a migrated in-memory database.
func newTestApp(t *testing.T) *application {
	t.Helper()

	cfg := testConfig()
	db, err := setupAppDatabase(context.Background(), cfg.Database, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	app, err := newApplication(cfg, discardLogger(), db)
	require.NoError(t, err)
	return app
}

func seedWord(t *testing.T, app *application, text string, level domain.DifficultyLevel) *domain.Word {
	t.Helper()

	w, err := domain.NewWord(text, level)
	require.NoError(t, err)

	_, err = sqlstore.NewWordStore(app.db, discardLogger()).CreateMany(context.Background(), []*domain.Word{w})
	require.NoError(t, err)
	return w
}
