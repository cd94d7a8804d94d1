package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationStatus describes one migration as reported by Migrator.Status.
type MigrationStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt string
}

// Migrator applies the embedded schema migrations for the pool's dialect.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator builds a Migrator for db, picking the migration set that
// matches db's driver.
func NewMigrator(db *sqlx.DB, logger *slog.Logger) (*Migrator, error) {
	dialect, err := ParseDialect(db.DriverName())
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(migrationsFS, dialect.migrationsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect.gooseDialect(), db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		logger:   logger.With(slog.String("component", "migrator")),
	}, nil
}

// Up applies all pending migrations. It is idempotent.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	m.logResults(results)
	if err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}
	if len(results) == 0 {
		m.logger.Info("no pending migrations")
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if result != nil {
		m.logResults([]*goose.MigrationResult{result})
	}
	if err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}
	return nil
}

// Reset rolls back every applied migration.
func (m *Migrator) Reset(ctx context.Context) error {
	results, err := m.provider.DownTo(ctx, 0)
	m.logResults(results)
	if err != nil {
		return fmt.Errorf("migration reset failed: %w", err)
	}
	return nil
}

// Version returns the current schema version, 0 when nothing is applied.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Status lists every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		st := MigrationStatus{
			Version: s.Source.Version,
			Name:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		}
		if st.Applied {
			st.AppliedAt = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		out = append(out, st)
	}
	return out, nil
}

func (m *Migrator) logResults(results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		attrs := []any{
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		}
		if r.Error != nil {
			m.logger.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
			continue
		}
		m.logger.Info("migration applied", attrs...)
	}
}
