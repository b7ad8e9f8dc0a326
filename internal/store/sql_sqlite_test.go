package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_createLocalDBFileIfNotExists_CreatesFileAndDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "inventory.db")

	require.NoError(t, createLocalDBFileIfNotExists(dsn))

	info, err := os.Stat(dsn)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func Test_createLocalDBFileIfNotExists_KeepsExisting(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "inventory.db")
	require.NoError(t, os.WriteFile(dsn, []byte("SQLite format 3"), 0o600))

	require.NoError(t, createLocalDBFileIfNotExists(dsn))

	data, err := os.ReadFile(dsn)
	require.NoError(t, err)
	assert.Equal(t, "SQLite format 3", string(data))
}

func Test_createLocalDBFileIfNotExists_SkipsDriverDSNs(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	for _, dsn := range []string{"", ":memory:", "file:inventory.db?cache=shared"} {
		require.NoError(t, createLocalDBFileIfNotExists(dsn))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func Test_connDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"inventory.db", "inventory.db?_txlock=immediate&_busy_timeout=5000"},
		{"file:inventory.db?cache=shared", "file:inventory.db?cache=shared&_txlock=immediate&_busy_timeout=5000"},
		{"inventory.db?_txlock=deferred", "inventory.db?_txlock=deferred&_busy_timeout=5000"},
		{"inventory.db?_txlock=exclusive&_timeout=100", "inventory.db?_txlock=exclusive&_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, connDSN(tt.dsn))
		})
	}
}
