package service

import (
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openShared opens the database file at path the way a second process would.
func openShared(t *testing.T, path string) *store.Storages {
	t.Helper()
	s, err := store.NewStorages(testContext(), config.Storage{DB: config.DB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOutbox_SharedDatabaseKeepsBothWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	clientDB := openShared(t, path)
	serverDB := openShared(t, path)
	ctx := testContext()

	client := NewOutbox(clientDB.OutboxRepository, noReplay(t), &seqIDs{}, 3, nil, logger.Nop())
	server := NewOutbox(serverDB.OutboxRepository, noReplay(t), &seqIDs{op: 100}, 3, nil, logger.Nop())
	require.NoError(t, client.Load(ctx))
	require.NoError(t, server.Load(ctx))

	require.NoError(t, client.EnqueueUpdate(ctx, models.Located, "M1", models.Record{"model": "A"}))
	require.NoError(t, server.EnqueueDelete(ctx, models.Sold, "S9"))

	fresh := NewOutbox(openShared(t, path).OutboxRepository, noReplay(t), &seqIDs{}, 3, nil, logger.Nop())
	require.NoError(t, fresh.Load(ctx))
	entries := fresh.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, models.MethodUpdate, entries[0].Method)
	assert.Equal(t, models.Located, entries[0].Category)
	assert.Equal(t, "M1", entries[0].ID)
	assert.Equal(t, "A", entries[0].Payload.String("model"))

	assert.Equal(t, int64(2), entries[1].Seq)
	assert.Equal(t, models.MethodDelete, entries[1].Method)
	assert.Equal(t, models.Sold, entries[1].Category)
	assert.Equal(t, "S9", entries[1].ID)
}

func TestOutbox_SharedDatabaseClearAllLeavesUnseenEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := testContext()

	client := NewOutbox(openShared(t, path).OutboxRepository, noReplay(t), &seqIDs{}, 3, nil, logger.Nop())
	server := NewOutbox(openShared(t, path).OutboxRepository, noReplay(t), &seqIDs{op: 100}, 3, nil, logger.Nop())

	require.NoError(t, client.EnqueueDelete(ctx, models.Located, "1"))
	require.NoError(t, server.EnqueueDelete(ctx, models.Sold, "2"))
	// the client has not re-read since its own write
	require.NoError(t, client.ClearAll(ctx))

	require.NoError(t, server.Refresh(ctx))
	left := server.Entries()
	require.Len(t, left, 1)
	assert.Equal(t, models.Sold, left[0].Category)
	assert.Equal(t, "2", left[0].ID)
}

func TestLocalQuery_SeesWritesQueuedByAnotherProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := testContext()

	serverDB := openShared(t, path)
	snapshots := NewSnapshotStore(serverDB.CacheRepository, nil, logger.Nop())
	seedSnapshot(t, snapshots, models.Located, models.Record{"m_id": "M1", "model": "Old"})
	serverOutbox := NewOutbox(serverDB.OutboxRepository, noReplay(t), &seqIDs{op: 100}, 3, nil, logger.Nop())
	require.NoError(t, serverOutbox.Load(ctx))
	q := NewLocalQueryService(snapshots, serverOutbox, logger.Nop())

	client := NewOutbox(openShared(t, path).OutboxRepository, noReplay(t), &seqIDs{}, 3, nil, logger.Nop())
	require.NoError(t, client.EnqueueUpdate(ctx, models.Located, "M1", models.Record{"model": "New"}))

	rec, err := q.Detail(ctx, models.Located, "M1")

	require.NoError(t, err)
	assert.Equal(t, "New", rec.String("model"))
}
