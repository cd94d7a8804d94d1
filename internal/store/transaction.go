package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BigBug273/daily-vocab/internal/platform/logger"
	"github.com/jmoiron/sqlx"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sqlx.Tx) error

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction is rolled back and the
// error is returned unchanged. A panic inside fn rolls back and re-panics.
func RunInTransaction(ctx context.Context, db *sqlx.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %v", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			txErr := tx.Rollback()
			if txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	err = fn(ctx, tx)
	if err != nil {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %v", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}

// Transactor runs functions inside a transaction. Services depend on it
// instead of a concrete pool so they can be tested without a database.
type Transactor interface {
	RunInTx(ctx context.Context, fn TxFn) error
}

// DBTransactor is the Transactor backed by a *sqlx.DB.
type DBTransactor struct {
	db *sqlx.DB
}

var _ Transactor = (*DBTransactor)(nil)

// NewTransactor returns a Transactor over db.
func NewTransactor(db *sqlx.DB) *DBTransactor {
	return &DBTransactor{db: db}
}

// RunInTx implements Transactor by delegating to RunInTransaction.
func (t *DBTransactor) RunInTx(ctx context.Context, fn TxFn) error {
	return RunInTransaction(ctx, t.db, fn)
}
