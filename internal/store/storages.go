package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

// Storages groups the repositories backed by the local database.
type Storages struct {
	CacheRepository  CacheRepository
	OutboxRepository OutboxRepository

	db *DB
}

// NewStorages connects to the local SQLite database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		logger.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on top of an open handle.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CacheRepository:  NewCacheRepository(db, logger),
		OutboxRepository: NewOutboxRepository(db, logger),
		db:               db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database is still reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNilDB
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
