package store

import (
	"context"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed database operation may succeed
// if attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and corruption.
	NonRetryable ErrorClassification = iota

	// Retryable marks contention on the database file, which is shared by
	// the terminal client and the local fallback server.
	Retryable
)

// SQLiteErrorClassifier maps go-sqlite3 result codes to an
// [ErrorClassification].
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err to a sqlite3.Error. Anything else is NonRetryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return ClassifySQLiteError(sqErr)
	}
	return NonRetryable
}

// ClassifySQLiteError maps a result code.
//
// Retryable codes:
//   - SQLITE_BUSY: another connection holds a conflicting lock
//   - SQLITE_LOCKED: a table is locked within the shared cache
//
// Everything else (SQLITE_CONSTRAINT, SQLITE_CORRUPT, SQLITE_FULL,
// SQLITE_READONLY, ...) is NonRetryable.
func ClassifySQLiteError(sqErr sqlite3.Error) ErrorClassification {
	switch sqErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

const (
	busyAttempts = 3
	busyBackoff  = 50 * time.Millisecond
)

// retryBusy runs fn up to busyAttempts times, backing off linearly while the
// classifier reports the failure as retryable.
func retryBusy(ctx context.Context, c *SQLiteErrorClassifier, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || attempt >= busyAttempts || c.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * busyBackoff):
		}
	}
}
