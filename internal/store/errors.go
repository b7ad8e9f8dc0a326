package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure of the local persistence layer. Callers
	// that only need to know "local storage failed" match against it.
	ErrStorage = errors.New("local storage error")

	// ErrCacheMiss is returned when a cache key has never been written.
	ErrCacheMiss = errors.New("cache key not found")

	// ErrNilDB is returned by constructors given no database handle.
	ErrNilDB = errors.New("database handle is nil")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when an outbox payload cannot be
	// converted to or from its JSON column.
	ErrEncodingPayload = errors.New("failed to encode outbox payload")
)

// storageErr tags err with [ErrStorage] and the low-level sentinel kind.
func storageErr(kind, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrStorage, kind, err)
}
