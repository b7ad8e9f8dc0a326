// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// sqlite uses "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var outboxColumns = []string{
	"seq",
	"op_id",
	"method",
	"category",
	"record_id",
	"payload",
	"attempts",
	"created_at",
	"revision",
}

func buildUpsertCacheQuery(key string, value []byte, at time.Time) (string, []any, error) {
	return builder.
		Insert("cache").
		Columns("key", "value", "updated_at").
		Values(key, string(value), at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectCacheQuery(key string) (string, []any, error) {
	return builder.
		Select("value", "updated_at").
		From("cache").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildDeleteCacheQuery(keys []string) (string, []any, error) {
	return builder.
		Delete("cache").
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildSelectOutboxQuery() (string, []any, error) {
	return builder.
		Select(outboxColumns...).
		From("outbox").
		OrderBy("seq ASC").
		ToSql()
}

// buildInsertOutboxQuery leaves seq and revision to the table defaults.
func buildInsertOutboxQuery(row outboxRow) (string, []any, error) {
	return builder.
		Insert("outbox").
		Columns("op_id", "method", "category", "record_id", "payload", "attempts", "created_at").
		Values(row.opID, row.method, row.category, row.recordID, row.payload, row.attempts, row.createdAt).
		ToSql()
}

func buildUpdateOutboxQuery(row outboxRow) (string, []any, error) {
	return builder.
		Update("outbox").
		Set("method", row.method).
		Set("record_id", row.recordID).
		Set("payload", row.payload).
		Set("attempts", row.attempts).
		Set("revision", sq.Expr("revision + 1")).
		Where(sq.Eq{"seq": row.seq}).
		ToSql()
}

func buildDeleteOutboxQuery(seqs []int64) (string, []any, error) {
	return builder.
		Delete("outbox").
		Where(sq.Eq{"seq": seqs}).
		ToSql()
}
