// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type outboxRepository struct {
	*DB
	classifier *SQLiteErrorClassifier
	logger     *logger.Logger
}

// NewOutboxRepository returns an [OutboxRepository] backed by the "outbox"
// table.
func NewOutboxRepository(db *DB, logger *logger.Logger) OutboxRepository {
	return &outboxRepository{
		DB:         db,
		classifier: NewSQLiteErrorClassifier(),
		logger:     logger,
	}
}

// outboxRow is the column-level form of [models.OutboxEntry].
type outboxRow struct {
	seq       int64
	opID      string
	method    string
	category  string
	recordID  string
	payload   sql.NullString
	attempts  int
	createdAt time.Time
	revision  int64
}

func toOutboxRow(e models.OutboxEntry) (outboxRow, error) {
	row := outboxRow{
		seq:       e.Seq,
		opID:      e.OpID,
		method:    string(e.Method),
		category:  string(e.Category),
		recordID:  e.ID,
		attempts:  e.Attempts,
		createdAt: e.CreatedAt.UTC(),
		revision:  e.Revision,
	}
	if e.Payload != nil {
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return outboxRow{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
		row.payload = sql.NullString{String: string(raw), Valid: true}
	}
	return row, nil
}

func (r outboxRow) entry() (models.OutboxEntry, error) {
	e := models.OutboxEntry{
		Seq:       r.seq,
		OpID:      r.opID,
		Method:    models.Method(r.method),
		Category:  models.Category(r.category),
		ID:        r.recordID,
		Attempts:  r.attempts,
		CreatedAt: r.createdAt,
		Revision:  r.revision,
	}
	if r.payload.Valid && r.payload.String != "" {
		if err := json.Unmarshal([]byte(r.payload.String), &e.Payload); err != nil {
			return models.OutboxEntry{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
	}
	return e, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (o *outboxRepository) LoadAll(ctx context.Context) ([]models.OutboxEntry, error) {
	return o.loadAll(ctx, o.DB)
}

func (o *outboxRepository) loadAll(ctx context.Context, q queryer) ([]models.OutboxEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOutboxQuery()
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.LoadAll").Msg("error building select query")
		return nil, storageErr(ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.LoadAll").Msg("error querying outbox")
		return nil, storageErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := []models.OutboxEntry{}
	for rows.Next() {
		var row outboxRow
		if err = rows.Scan(
			&row.seq,
			&row.opID,
			&row.method,
			&row.category,
			&row.recordID,
			&row.payload,
			&row.attempts,
			&row.createdAt,
			&row.revision,
		); err != nil {
			log.Err(err).Str("func", "outboxRepository.LoadAll").Msg("error scanning outbox row")
			return nil, storageErr(ErrScanningRow, err)
		}

		entry, err := row.entry()
		if err != nil {
			log.Err(err).Str("func", "outboxRepository.LoadAll").Int64("seq", row.seq).Msg("error decoding outbox payload")
			return nil, storageErr(ErrEncodingPayload, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "outboxRepository.LoadAll").Msg("error iterating outbox rows")
		return nil, storageErr(ErrScanningRows, err)
	}

	return entries, nil
}

// Apply runs plan inside a write transaction. The transaction is retried
// while the database is busy, so plan may be called more than once.
func (o *outboxRepository) Apply(ctx context.Context, plan OutboxPlan) ([]models.OutboxEntry, error) {
	var entries []models.OutboxEntry
	err := retryBusy(ctx, o.classifier, func() error {
		var err error
		entries, err = o.apply(ctx, plan)
		return err
	})
	return entries, err
}

func (o *outboxRepository) apply(ctx context.Context, plan OutboxPlan) ([]models.OutboxEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := o.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "outboxRepository.Apply").Msg("error beginning transaction")
		return nil, storageErr(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := o.loadAll(ctx, tx)
	if err != nil {
		return nil, err
	}

	change, err := plan(current)
	if err != nil {
		return nil, err
	}
	entries := current
	if !change.Empty() {
		if err = o.write(ctx, tx, change); err != nil {
			return nil, err
		}
		if entries, err = o.loadAll(ctx, tx); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "outboxRepository.Apply").Msg("error committing transaction")
		return nil, storageErr(ErrCommitingTransaction, err)
	}
	return entries, nil
}

// write removes, rewrites and appends entries, in that order.
func (o *outboxRepository) write(ctx context.Context, q queryer, change models.OutboxChange) error {
	log := logger.FromContext(ctx)

	if len(change.Removed) > 0 {
		query, args, err := buildDeleteOutboxQuery(change.Removed)
		if err != nil {
			log.Err(err).Str("func", "outboxRepository.Apply").Msg("error building delete query")
			return storageErr(ErrBuildingSQLQuery, err)
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "outboxRepository.Apply").Ints64("seqs", change.Removed).Msg("error deleting outbox entries")
			return storageErr(ErrExecutingStatement, err)
		}
	}

	type step struct {
		build func(outboxRow) (string, []any, error)
		items []models.OutboxEntry
	}
	for _, st := range []step{
		{build: buildUpdateOutboxQuery, items: change.Updated},
		{build: buildInsertOutboxQuery, items: change.Added},
	} {
		for _, e := range st.items {
			row, err := toOutboxRow(e)
			if err != nil {
				log.Err(err).Str("func", "outboxRepository.Apply").Int64("seq", e.Seq).Msg("error encoding outbox payload")
				return storageErr(ErrEncodingPayload, err)
			}

			query, args, err := st.build(row)
			if err != nil {
				log.Err(err).Str("func", "outboxRepository.Apply").Int64("seq", e.Seq).Msg("error building outbox query")
				return storageErr(ErrBuildingSQLQuery, err)
			}

			if _, err = q.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "outboxRepository.Apply").
					Int64("seq", e.Seq).
					Str("method", string(e.Method)).
					Str("category", string(e.Category)).
					Msg("error writing outbox entry")
				return storageErr(ErrExecutingStatement, err)
			}
		}
	}

	return nil
}
