package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	History  HistoryConfig  `mapstructure:"history" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// ShutdownTimeout returns the graceful shutdown window.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver is "pgx" for PostgreSQL or "sqlite3" for SQLite.
	Driver string `mapstructure:"driver" validate:"required,oneof=pgx postgres sqlite3 sqlite"`
	// URL is a PostgreSQL connection URL or a SQLite DSN (file path or :memory:).
	URL                    string `mapstructure:"url" validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// ConnMaxLifetime returns the pool's connection lifetime.
func (c DatabaseConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}

// HistoryConfig sets the practice history page size. MaxLimit is an optional
// cap on requested limits; 0 disables it.
type HistoryConfig struct {
	DefaultLimit int `mapstructure:"default_limit" validate:"gte=1"`
	MaxLimit     int `mapstructure:"max_limit" validate:"omitempty,gtefield=DefaultLimit"`
}
