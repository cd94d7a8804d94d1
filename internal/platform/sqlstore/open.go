package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

const pingTimeout = 5 * time.Second

// Config describes how to open the database pool.
type Config struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open establishes a connection pool, configures it for the dialect and
// verifies it with a ping.
//
// SQLite connections are limited to one open connection with no lifetime, so
// in-memory databases survive for the life of the pool and writers never
// contend. Foreign keys are enabled through the DSN.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sqlx.DB, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.URL
	if dialect == DialectSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		slog.String("driver", string(dialect)),
		slog.String("url", MaskDatabaseURL(cfg.URL)))
	return db, nil
}

// sqliteDSN appends _foreign_keys=on unless the DSN already configures it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// MaskDatabaseURL masks the password in a database URL for safe logging.
// Values that are not URLs (such as SQLite file paths) are returned as is.
func MaskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		if strings.Contains(dbURL, "@") {
			return "invalid-url"
		}
		return dbURL
	}

	if parsedURL.User != nil {
		if _, hasPassword := parsedURL.User.Password(); hasPassword {
			parsedURL.User = url.UserPassword(parsedURL.User.Username(), "****")
			return parsedURL.String()
		}
	}

	return dbURL
}
