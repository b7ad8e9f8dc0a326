package connectivity

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSetter struct {
	mu     sync.Mutex
	values []bool
}

func (s *recordingSetter) SetForceLocal(_ context.Context, force bool) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, force)
	return State{}
}

func (s *recordingSetter) last() (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return false, 0
	}
	return s.values[len(s.values)-1], len(s.values)
}

func TestFlagWatcher_FollowsFile(t *testing.T) {
	dir := t.TempDir()
	flag := filepath.Join(dir, "force-local")
	setter := &recordingSetter{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewFlagWatcher(flag, setter, logger.Nop()).Run(ctx)
		close(done)
	}()

	// initial state: absent
	require.Eventually(t, func() bool {
		_, n := setter.last()
		return n == 1
	}, time.Second, 10*time.Millisecond)
	v, _ := setter.last()
	assert.False(t, v)

	require.NoError(t, os.WriteFile(flag, nil, 0o600))
	require.Eventually(t, func() bool {
		v, _ := setter.last()
		return v
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(flag))
	require.Eventually(t, func() bool {
		v, n := setter.last()
		return !v && n >= 3
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestFlagWatcher_EmptyPathReturns(t *testing.T) {
	setter := &recordingSetter{}

	NewFlagWatcher("", setter, logger.Nop()).Run(context.Background())

	_, n := setter.last()
	assert.Zero(t, n)
}

func TestFlagWatcher_MissingDirReturns(t *testing.T) {
	setter := &recordingSetter{}
	path := filepath.Join(t.TempDir(), "missing", "flag")

	NewFlagWatcher(path, setter, logger.Nop()).Run(context.Background())

	_, n := setter.last()
	assert.Zero(t, n)
}
