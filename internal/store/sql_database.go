package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/migrations"
)

// maxTxAttempts bounds how often a transaction is replayed after a
// retryable failure such as a deadlock or serialization error.
const maxTxAttempts = 3

// DB wraps the connection pool together with the schema it was opened for
// and the classifier used to decide on transaction retries.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	schema             string
}

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Migrate applies the embedded migrations to the configured schema.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.schema)
}

// inTx runs fn inside a transaction and commits when fn returns nil.
// The transaction is rolled back on error or panic; panics are rethrown.
// Failures the classifier marks as retryable replay the whole transaction.
func (db *DB) inTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, opts, fn)
		if err == nil || !db.retryable(err) || ctx.Err() != nil {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.inTx").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}

	return err
}

// inUserTx is inTx with the per-user advisory lock taken as the first
// statement, so multi-step writes of one user never interleave.
func (db *DB) inUserTx(ctx context.Context, username string, fn func(ctx context.Context, tx DBTX) error) error {
	return db.inTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		if err := lock(ctx, tx, userLockKey(username)); err != nil {
			return err
		}
		return fn(ctx, tx)
	})
}

func (db *DB) runTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, tx)
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// lock takes a transaction-scoped advisory lock released on commit or rollback.
func lock(ctx context.Context, tx DBTX, key string) error {
	if _, err := tx.ExecContext(ctx, acquireAdvisoryLock, key); err != nil {
		return fmt.Errorf("%w %q: %w", ErrAcquiringLock, key, err)
	}
	return nil
}

func userLockKey(username string) string {
	return "user:" + username
}
