// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// sourceIDField names the located machine an archived or sold create was
// derived from.
const sourceIDField = "sourceId"

// Replayer sends one outbox entry to a server. The server adapter implements
// it.
type Replayer interface {
	Replay(ctx context.Context, base string, entry models.OutboxEntry) (models.ReplayResult, error)
}

// IDGenerator produces operation ids and temporary record ids.
type IDGenerator interface {
	Generate() string
	TempID() string
}

// Outbox is the ordered log of pending mutations. The persisted table is the
// source of truth: every change is planned against the rows read inside the
// write transaction, so processes sharing the database never overwrite each
// other's entries. The in-memory entries mirror the table as of the last read.
// One mutex serializes enqueues and flushes of this process; a flush holds
// it for the whole replay.
type Outbox struct {
	mu      sync.Mutex
	entries []models.OutboxEntry

	repo     store.OutboxRepository
	replayer Replayer
	ids      IDGenerator
	now      func() time.Time

	warnAttempts int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewOutbox returns an empty outbox; call [Outbox.Load] to restore persisted
// entries. A failing entry is logged as a warning once it has failed
// warnAttempts times.
func NewOutbox(
	repo store.OutboxRepository,
	replayer Replayer,
	ids IDGenerator,
	warnAttempts int,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Outbox {
	return &Outbox{
		repo:         repo,
		replayer:     replayer,
		ids:          ids,
		now:          time.Now,
		warnAttempts: warnAttempts,
		metrics:      m,
		logger:       logger,
	}
}

// Load replaces the in-memory entries with the persisted ones.
func (o *Outbox) Load(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.refreshLocked(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("func", "Outbox.Load").Int("entries", len(o.entries)).Msg("outbox restored")
	return nil
}

// Refresh re-reads the persisted entries, picking up those written by other
// processes sharing the database.
func (o *Outbox) Refresh(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.refreshLocked(ctx)
}

func (o *Outbox) refreshLocked(ctx context.Context) error {
	entries, err := o.repo.LoadAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Outbox.Refresh").Msg("error loading outbox")
		return fmt.Errorf("load outbox: %w", err)
	}
	o.mirrorLocked(entries)
	return nil
}

// EnqueueCreate records the creation of item in category and returns the id
// the record is known by until the server confirms it: the item's own id if
// it carries one, a temporary id otherwise. A pending delete of the same id
// is dropped, and a pending create of the same id absorbs the item.
func (o *Outbox) EnqueueCreate(ctx context.Context, category models.Category, item models.Record) (string, error) {
	if !category.Valid() {
		return "", models.ErrUnknownCategory
	}

	payload := models.Record{}
	if item != nil {
		payload = item.Clone()
	}
	id := payload.ID(category)
	if id == "" {
		id = o.ids.TempID()
	}
	payload.SetID(category, id)

	o.mu.Lock()
	defer o.mu.Unlock()

	err := o.applyLocked(ctx, "Outbox.EnqueueCreate", func(current []models.OutboxEntry) (models.OutboxChange, error) {
		var change models.OutboxChange
		for _, e := range current {
			if e.Category == category && e.ID == id && e.Method == models.MethodDelete {
				change.Removed = append(change.Removed, e.Seq)
			}
		}

		if i := indexOf(current, category, id, models.MethodCreate); i >= 0 {
			merged := current[i]
			merged.Payload = merged.Payload.Merge(payload)
			change.Updated = append(change.Updated, merged)
			return change, nil
		}

		change.Added = append(change.Added, o.newEntry(models.MethodCreate, category, id, payload))
		return change, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// EnqueueUpdate records a patch of record id. The patch is merged into a
// pending create or update of the same record when one exists. An update of
// a record with a pending delete is dropped.
func (o *Outbox) EnqueueUpdate(ctx context.Context, category models.Category, id string, patch models.Record) error {
	if !category.Valid() {
		return models.ErrUnknownCategory
	}
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.applyLocked(ctx, "Outbox.EnqueueUpdate", func(current []models.OutboxEntry) (models.OutboxChange, error) {
		if indexOf(current, category, id, models.MethodDelete) >= 0 {
			log.Debug().Str("func", "Outbox.EnqueueUpdate").Str("category", category.String()).Str("id", id).Msg("record has a pending delete, update dropped")
			return models.OutboxChange{}, nil
		}

		for _, method := range []models.Method{models.MethodCreate, models.MethodUpdate} {
			if i := indexOf(current, category, id, method); i >= 0 {
				merged := current[i]
				merged.Payload = merged.Payload.Merge(patch)
				if method == models.MethodCreate {
					merged.Payload.SetID(category, id)
				}
				return models.OutboxChange{Updated: []models.OutboxEntry{merged}}, nil
			}
		}

		return models.OutboxChange{Added: []models.OutboxEntry{o.newEntry(models.MethodUpdate, category, id, patch.Clone())}}, nil
	})
}

// EnqueueDelete records the deletion of record id and cancels its pending
// creates and updates. Nothing is recorded when the record never reached the
// server: its id is temporary or its create was still pending.
func (o *Outbox) EnqueueDelete(ctx context.Context, category models.Category, id string) error {
	if !category.Valid() {
		return models.ErrUnknownCategory
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.applyLocked(ctx, "Outbox.EnqueueDelete", func(current []models.OutboxEntry) (models.OutboxChange, error) {
		var (
			change          models.OutboxChange
			cancelledCreate bool
			pendingDelete   bool
		)
		for _, e := range current {
			if e.Category != category || e.ID != id {
				continue
			}
			switch e.Method {
			case models.MethodDelete:
				pendingDelete = true
			case models.MethodCreate:
				cancelledCreate = true
				change.Removed = append(change.Removed, e.Seq)
			default:
				change.Removed = append(change.Removed, e.Seq)
			}
		}

		if !models.IsTempID(id) && !cancelledCreate && !pendingDelete {
			change.Added = append(change.Added, o.newEntry(models.MethodDelete, category, id, nil))
		}
		return change, nil
	})
}

// Flush replays entries in sequence order against base and returns how many
// were applied. It stops at the first failure: the failing entry and
// everything after it stay queued and the failing entry's attempt count is
// incremented. A delete the server answers with "not found" counts as
// applied.
//
// An entry rewritten by another process while it was being replayed is kept:
// an update goes out again with its merged patch, a create becomes an update
// of the record the server just created.
func (o *Outbox) Flush(ctx context.Context, base string) (int, error) {
	log := logger.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	applied := 0
	defer func() {
		o.metrics.AddApplied(applied)
	}()

	if err := o.refreshLocked(ctx); err != nil {
		return 0, err
	}

	for len(o.entries) > 0 {
		if err := ctx.Err(); err != nil {
			return applied, err
		}

		entry := o.entries[0]
		res, err := o.replayer.Replay(ctx, base, entry)
		if err != nil && entry.Method == models.MethodDelete && errors.Is(err, adapter.ErrNotFound) {
			log.Debug().Str("func", "Outbox.Flush").Str("id", entry.ID).Msg("record already gone, delete counted as applied")
			err = nil
		}
		if err != nil {
			o.recordFailureLocked(ctx, entry, err)
			return applied, fmt.Errorf("replay %s %s %s: %w", entry.Method, entry.Category, entry.ID, err)
		}

		applied++
		if err = o.applyLocked(ctx, "Outbox.Flush", retirePlan(entry, res.ID)); err != nil {
			return applied, err
		}
	}

	log.Info().Str("func", "Outbox.Flush").Int("applied", applied).Msg("outbox drained")
	return applied, nil
}

// recordFailureLocked increments the attempt count of a failed entry and
// logs the failure, as a warning once the entry keeps failing.
func (o *Outbox) recordFailureLocked(ctx context.Context, entry models.OutboxEntry, replayErr error) {
	log := logger.FromContext(ctx)

	attempts := entry.Attempts + 1
	err := o.applyLocked(ctx, "Outbox.Flush", func(current []models.OutboxEntry) (models.OutboxChange, error) {
		i := slices.IndexFunc(current, func(e models.OutboxEntry) bool { return e.Seq == entry.Seq })
		if i < 0 {
			return models.OutboxChange{}, nil
		}
		failed := current[i]
		failed.Attempts++
		attempts = failed.Attempts
		return models.OutboxChange{Updated: []models.OutboxEntry{failed}}, nil
	})
	if err != nil {
		log.Err(err).Str("func", "Outbox.Flush").Int64("seq", entry.Seq).Msg("error recording failed attempt")
	}

	ev := log.Info()
	if o.warnAttempts > 0 && attempts >= o.warnAttempts {
		ev = log.Warn()
	}
	ev.Err(replayErr).
		Str("func", "Outbox.Flush").
		Int64("seq", entry.Seq).
		Str("method", string(entry.Method)).
		Str("category", entry.Category.String()).
		Str("id", entry.ID).
		Int("attempts", attempts).
		Int("pending", len(o.entries)).
		Msg("replay failed, flush stopped")
}

// retirePlan removes a replayed entry unless it was rewritten meanwhile, and
// moves later entries from a temporary id to the one the server assigned.
func retirePlan(entry models.OutboxEntry, serverID string) store.OutboxPlan {
	return func(current []models.OutboxEntry) (models.OutboxChange, error) {
		var change models.OutboxChange
		work := slices.Clone(current)
		changed := map[int64]bool{}

		i := slices.IndexFunc(work, func(e models.OutboxEntry) bool { return e.Seq == entry.Seq })
		if i >= 0 {
			if work[i].Revision == entry.Revision {
				change.Removed = append(change.Removed, entry.Seq)
				work = slices.Delete(work, i, i+1)
			} else if work[i].Method == models.MethodCreate {
				work[i].Method = models.MethodUpdate
				changed[entry.Seq] = true
			}
		}

		if entry.Method == models.MethodCreate && serverID != "" && serverID != entry.ID {
			for _, seq := range substituteIDs(work, entry.Category, entry.ID, serverID) {
				changed[seq] = true
			}
		}

		for _, e := range work {
			if changed[e.Seq] {
				change.Updated = append(change.Updated, e)
			}
		}
		return change, nil
	}
}

// SubstituteID rewrites every pending entry still referencing oldID in
// category to newID, and every sourceId equal to oldID.
func (o *Outbox) SubstituteID(ctx context.Context, category models.Category, oldID, newID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.applyLocked(ctx, "Outbox.SubstituteID", func(current []models.OutboxEntry) (models.OutboxChange, error) {
		work := slices.Clone(current)
		seqs := substituteIDs(work, category, oldID, newID)

		var change models.OutboxChange
		for _, e := range work {
			if slices.Contains(seqs, e.Seq) {
				change.Updated = append(change.Updated, e)
			}
		}
		return change, nil
	})
}

// substituteIDs rewrites entries in place and returns the sequence numbers
// of those it touched.
func substituteIDs(entries []models.OutboxEntry, category models.Category, oldID, newID string) []int64 {
	var touched []int64
	for i, e := range entries {
		hit := false
		if e.Category == category && e.ID == oldID {
			e.ID = newID
			if e.Payload != nil {
				e.Payload = e.Payload.Clone()
				if _, ok := e.Payload[category.IDField()]; ok {
					e.Payload.SetID(category, newID)
				}
			}
			hit = true
		}
		if category == models.Located && e.Payload.String(sourceIDField) == oldID {
			e.Payload = e.Payload.Clone()
			e.Payload[sourceIDField] = newID
			hit = true
		}
		if hit {
			entries[i] = e
			touched = append(touched, e.Seq)
		}
	}
	return touched
}

// ClearAll drops every entry this process knows of. Entries another process
// wrote since the last read are left alone.
func (o *Outbox) ClearAll(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	known := make([]int64, 0, len(o.entries))
	for _, e := range o.entries {
		known = append(known, e.Seq)
	}

	return o.applyLocked(ctx, "Outbox.ClearAll", func(current []models.OutboxEntry) (models.OutboxChange, error) {
		var change models.OutboxChange
		for _, e := range current {
			if slices.Contains(known, e.Seq) {
				change.Removed = append(change.Removed, e.Seq)
			}
		}
		return change, nil
	})
}

// Pending returns the entries of category in sequence order.
func (o *Outbox) Pending(category models.Category) []models.OutboxEntry {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]models.OutboxEntry, 0, len(o.entries))
	for _, e := range o.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns a copy of all entries in sequence order.
func (o *Outbox) Entries() []models.OutboxEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.entries)
}

// Len returns the number of pending entries.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}

// PendingCounts returns the number of pending entries per category.
func (o *Outbox) PendingCounts() map[models.Category]int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.countsLocked()
}

func (o *Outbox) countsLocked() map[models.Category]int {
	counts := make(map[models.Category]int, 4)
	for _, e := range o.entries {
		counts[e.Category]++
	}
	return counts
}

func (o *Outbox) newEntry(method models.Method, category models.Category, id string, payload models.Record) models.OutboxEntry {
	return models.OutboxEntry{
		OpID:      o.ids.Generate(),
		Method:    method,
		Category:  category,
		ID:        id,
		Payload:   payload,
		CreatedAt: o.now().UTC(),
	}
}

func indexOf(entries []models.OutboxEntry, category models.Category, id string, method models.Method) int {
	return slices.IndexFunc(entries, func(e models.OutboxEntry) bool {
		return e.Category == category && e.ID == id && e.Method == method
	})
}

// applyLocked runs plan against the persisted log and mirrors the result. On
// a storage failure the in-memory log is left as it was.
func (o *Outbox) applyLocked(ctx context.Context, fn string, plan store.OutboxPlan) error {
	entries, err := o.repo.Apply(ctx, plan)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error updating outbox")
		return fmt.Errorf("update outbox: %w", err)
	}
	o.mirrorLocked(entries)
	return nil
}

func (o *Outbox) mirrorLocked(entries []models.OutboxEntry) {
	o.entries = entries
	o.metrics.SetPending(o.countsLocked())
}
