package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when a lookup by id matches no row.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrKeyNotFound is returned by the key-value store for a missing key.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrStorageUnavailable wraps transient database failures (lost
	// connection, serialization failure, deadlock) that may succeed when
	// retried.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingPayload is returned when an entity cannot be converted to or
	// from its stored JSON form.
	ErrEncodingPayload = errors.New("failed to encode entity payload")
)
