package store

import (
	"database/sql"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/migrations"
)

// DB wraps the local database handle together with the logger used for
// connection-level events.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an already opened handle. It is mainly used by tests that
// construct the handle with sqlmock.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// Migrate applies the embedded schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
