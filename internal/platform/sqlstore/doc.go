// Package sqlstore provides SQL implementations of the store interfaces for
// PostgreSQL (driver "pgx") and SQLite (driver "sqlite3").
//
// Queries are built with squirrel using the placeholder format of the
// connection's driver, and rows are scanned with sqlx. Schema changes are
// embedded goose migrations, one directory per dialect.
package sqlstore
