package sqlstore

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect names a supported database/sql driver.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// ParseDialect maps a driver name to a Dialect. "postgres" is accepted as an
// alias for pgx.
func ParseDialect(driver string) (Dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return DialectPostgres, nil
	case "sqlite3", "sqlite":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d Dialect) placeholder() squirrel.PlaceholderFormat {
	if d == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (d Dialect) gooseDialect() goose.Dialect {
	if d == DialectPostgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}

func (d Dialect) migrationsDir() string {
	if d == DialectPostgres {
		return "migrations/postgres"
	}
	return "migrations/sqlite"
}

// driverNamer is satisfied by *sqlx.DB, *sqlx.Tx and store.DBTX.
type driverNamer interface {
	DriverName() string
}

// builder returns a squirrel statement builder using the placeholder format
// of db's driver.
func builder(db driverNamer) squirrel.StatementBuilderType {
	d, err := ParseDialect(db.DriverName())
	if err != nil {
		d = DialectPostgres
	}
	return squirrel.StatementBuilder.PlaceholderFormat(d.placeholder())
}
