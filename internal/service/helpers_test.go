package service

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/rs/zerolog"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// capturingContext returns a context whose logger writes JSON lines to the
// returned buffer.
func capturingContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := zerolog.New(buf)
	return l.WithContext(context.Background()), buf
}

// memCache is an in-memory [store.CacheRepository].
type memCache struct {
	mu     sync.Mutex
	values map[string][]byte
	at     map[string]time.Time
	putErr error
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}, at: map[string]time.Time{}}
}

func (c *memCache) Put(_ context.Context, key string, value []byte, at time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.putErr != nil {
		return c.putErr
	}
	c.values[key] = slices.Clone(value)
	c.at[key] = at
	return nil
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return nil, time.Time{}, store.ErrCacheMiss
	}
	return slices.Clone(v), c.at[key], nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

// memOutboxRepo is an in-memory [store.OutboxRepository]. It assigns
// sequence numbers and revisions the way the SQLite table does.
type memOutboxRepo struct {
	mu       sync.Mutex
	entries  map[int64]models.OutboxEntry
	lastSeq  int64
	applyErr error
}

func newMemOutboxRepo(seed ...models.OutboxEntry) *memOutboxRepo {
	r := &memOutboxRepo{entries: map[int64]models.OutboxEntry{}}
	for _, e := range seed {
		r.put(e)
	}
	return r
}

// put stores e as is, as if another writer had persisted it.
func (r *memOutboxRepo) put(e models.OutboxEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Seq] = e
	r.lastSeq = max(r.lastSeq, e.Seq)
}

func (r *memOutboxRepo) LoadAll(context.Context) ([]models.OutboxEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked(), nil
}

func (r *memOutboxRepo) Apply(_ context.Context, plan store.OutboxPlan) ([]models.OutboxEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.applyErr != nil {
		return nil, r.applyErr
	}

	change, err := plan(r.sortedLocked())
	if err != nil {
		return nil, err
	}
	if change.Empty() {
		return r.sortedLocked(), nil
	}

	for _, seq := range change.Removed {
		delete(r.entries, seq)
	}
	for _, e := range change.Updated {
		old, ok := r.entries[e.Seq]
		if !ok {
			continue
		}
		old.Method, old.ID, old.Payload, old.Attempts = e.Method, e.ID, e.Payload, e.Attempts
		old.Revision++
		r.entries[e.Seq] = old
	}
	for _, e := range change.Added {
		r.lastSeq++
		e.Seq, e.Revision = r.lastSeq, 0
		r.entries[e.Seq] = e
	}
	return r.sortedLocked(), nil
}

func (r *memOutboxRepo) sortedLocked() []models.OutboxEntry {
	out := make([]models.OutboxEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b models.OutboxEntry) int { return cmp.Compare(a.Seq, b.Seq) })
	return out
}

func (r *memOutboxRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// seqIDs hands out predictable operation and temporary ids.
type seqIDs struct {
	mu  sync.Mutex
	op  int
	tmp int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.op++
	return fmt.Sprintf("op-%d", g.op)
}

func (g *seqIDs) TempID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tmp++
	return fmt.Sprintf("%s%d", models.TempIDPrefix, g.tmp)
}

// replayFunc adapts a function to [Replayer].
type replayFunc func(ctx context.Context, base string, entry models.OutboxEntry) (models.ReplayResult, error)

func (f replayFunc) Replay(ctx context.Context, base string, entry models.OutboxEntry) (models.ReplayResult, error) {
	return f(ctx, base, entry)
}

func newTestOutbox(t *testing.T, repo *memOutboxRepo, replayer Replayer) *Outbox {
	t.Helper()
	return NewOutbox(repo, replayer, &seqIDs{}, 3, nil, logger.Nop())
}

func newTestSnapshots(cache *memCache) *SnapshotStore {
	return NewSnapshotStore(cache, nil, logger.Nop())
}

// seedSnapshot stores records as the snapshot of category.
func seedSnapshot(t *testing.T, s *SnapshotStore, category models.Category, records ...models.Record) {
	t.Helper()
	if err := s.ReplaceCategory(testContext(), category, records); err != nil {
		t.Fatalf("seed %s snapshot: %v", category, err)
	}
}

// ids returns the identity of every record.
func ids(category models.Category, records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID(category))
	}
	return out
}
