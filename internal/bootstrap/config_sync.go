package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/gacha"
	"github.com/osse101/RewardEngine_Go/internal/item"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
)

// SyncItems mirrors the catalog's items into the database. An unchanged
// catalog is skipped by the syncer's hash check.
func SyncItems(ctx context.Context, syncer item.Syncer, cat *rewardconfig.Catalog) error {
	slog.Info(LogMsgSyncingItems)

	result, err := syncer.Sync(ctx, cat.Items())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.Changed() {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.ItemsInserted,
			"updated", result.ItemsUpdated,
			"skipped", result.ItemsSkipped,
			"retired", result.ItemsRetired)
	} else {
		slog.Info(LogMsgItemsUnchanged)
	}
	return nil
}

// RegisterReloadHook runs after every successful catalog swap, whether from
// the file watcher or the admin endpoint: items are re-synced, cached
// candidate pools dropped and a ConfigReloaded event published.
func RegisterReloadHook(store *rewardconfig.Store, syncer item.Syncer, granter *gacha.Granter, bus event.Bus) {
	store.OnReload(func(cat *rewardconfig.Catalog) {
		ctx := context.Background()
		err := SyncItems(ctx, syncer, cat)
		if err != nil {
			slog.Error(LogMsgItemSyncFailed, "error", err)
		}
		granter.Invalidate(ctx)
		event.Publish(ctx, bus, event.NewConfigReloadedEvent(len(cat.Issues()), err))
	})
}

// CatalogReloader serves the admin reload endpoint. Successful reloads are
// reported by the reload hook; failures are published here because the store
// keeps the previous catalog and notifies nobody.
type CatalogReloader struct {
	store *rewardconfig.Store
	bus   event.Bus
}

// NewCatalogReloader creates a reloader for store.
func NewCatalogReloader(store *rewardconfig.Store, bus event.Bus) *CatalogReloader {
	return &CatalogReloader{store: store, bus: bus}
}

// Reload re-reads the reward config file.
func (r *CatalogReloader) Reload(ctx context.Context) (*rewardconfig.Catalog, error) {
	cat, err := r.store.Reload(ctx)
	if err != nil {
		event.Publish(ctx, r.bus, event.NewConfigReloadedEvent(0, err))
		return nil, err
	}
	return cat, nil
}
