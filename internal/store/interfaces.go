package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CacheRepository is a durable key-value namespace. Snapshots of every
// category and the filter option set live under fixed keys.
type CacheRepository interface {
	// Put stores value under key, replacing any previous value in a single
	// statement, and records at as the update time.
	Put(ctx context.Context, key string, value []byte, at time.Time) error

	// Get returns the value stored under key and the time it was written.
	// Returns [ErrCacheMiss] when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, time.Time, error)

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// OutboxPlan computes the edits to apply given the entries currently
// persisted, in sequence order.
type OutboxPlan func(current []models.OutboxEntry) (models.OutboxChange, error)

// OutboxRepository persists outbox entries in sequence order. Several
// processes may share the table.
type OutboxRepository interface {
	// LoadAll returns every persisted entry ordered by sequence.
	LoadAll(ctx context.Context) ([]models.OutboxEntry, error)

	// Apply reads the persisted entries, asks plan for a change and writes
	// it, all in one write transaction, and returns the entries as they are
	// after the change. Updated entries get their revision incremented and
	// added entries get the next sequence numbers. An error returned by plan
	// aborts the transaction and is returned unchanged.
	Apply(ctx context.Context, plan OutboxPlan) ([]models.OutboxEntry, error)
}
