package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/migrations"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database handle together with the SQL dialect settings the
// repositories need.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// wrapError marks transient failures with [ErrStorageUnavailable] and
// wraps everything else with kind.
func (db *DB) wrapError(kind, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

// inTx runs fn inside a transaction and commits when fn succeeds.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return db.wrapError(ErrCommitingTransaction, err)
	}
	return nil
}
