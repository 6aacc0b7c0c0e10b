package rewardconfig

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestStore_ReloadSwapsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	writeConfig(t, path, baseYAML)

	store, err := NewStore(context.Background(), path)
	require.NoError(t, err)
	first := store.Current()

	var notified atomic.Int32
	store.OnReload(func(*Catalog) { notified.Add(1) })

	writeConfig(t, path, "gacha:\n  refund_rate: 0.25\n"+baseYAML[len("\ngacha:\n"):])
	cat, err := store.Reload(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, store.Current())
	assert.Same(t, cat, store.Current())
	assert.Equal(t, int64(250), store.Current().Refund(1000))
	assert.Equal(t, int64(500), first.Refund(1000), "old snapshot is unchanged")
	assert.Equal(t, int32(1), notified.Load())
}

func TestStore_FailedReloadKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	writeConfig(t, path, baseYAML)

	store, err := NewStore(context.Background(), path)
	require.NoError(t, err)
	before := store.Current()

	writeConfig(t, path, "gacha: [broken")
	_, err = store.Reload(context.Background())
	require.Error(t, err)
	assert.Same(t, before, store.Current())
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStore_WatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	writeConfig(t, path, baseYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := NewStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Watch(ctx))

	writeConfig(t, path, "gacha:\n  refund_rate: 0.1\n"+baseYAML[len("\ngacha:\n"):])

	require.Eventually(t, func() bool {
		return store.Current().Refund(1000) == 100
	}, 5*time.Second, 50*time.Millisecond)
}
