package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository returns a [CacheRepository] backed by the "cache" table.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) Put(ctx context.Context, key string, value []byte, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCacheQuery(key, value, at.UTC())
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.Put").Str("key", key).Msg("error building upsert query")
		return storageErr(ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "cacheRepository.Put").Str("key", key).Msg("error writing cache entry")
		return storageErr(ErrExecutingStatement, err)
	}

	return nil
}

func (c *cacheRepository) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCacheQuery(key)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.Get").Str("key", key).Msg("error building select query")
		return nil, time.Time{}, storageErr(ErrBuildingSQLQuery, err)
	}

	var (
		value     string
		updatedAt time.Time
	)
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrCacheMiss
	}
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.Get").Str("key", key).Msg("error reading cache entry")
		return nil, time.Time{}, storageErr(ErrScanningRow, err)
	}

	return []byte(value), updatedAt, nil
}

func (c *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCacheQuery(keys)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.Delete").Msg("error building delete query")
		return storageErr(ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "cacheRepository.Delete").Strs("keys", keys).Msg("error deleting cache entries")
		return storageErr(ErrExecutingStatement, err)
	}

	return nil
}
