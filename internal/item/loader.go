package item

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// ErrInvalidCatalog is returned when Sync is handed nothing to sync
var ErrInvalidCatalog = errors.New("invalid catalog")

// Syncer mirrors the configured item catalog into the items table so draws
// can reference stable item ids.
type Syncer interface {
	Sync(ctx context.Context, items []domain.Item) (*SyncResult, error)
}

// SyncResult contains the result of syncing items to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
	ItemsRetired  int64
}

// Changed reports whether the sync touched any row.
func (r *SyncResult) Changed() bool {
	return r.ItemsInserted > 0 || r.ItemsUpdated > 0 || r.ItemsRetired > 0
}

type itemSyncer struct {
	repo repository.Item

	mu       sync.Mutex
	lastHash string
}

// NewSyncer creates a new Syncer instance
func NewSyncer(repo repository.Item) Syncer {
	return &itemSyncer{repo: repo}
}

// Sync inserts new items, rewrites changed ones and retires items that left
// the catalog. Retired items keep their rows so ownership stays valid.
// A catalog identical to the last synced one is skipped.
func (s *itemSyncer) Sync(ctx context.Context, items []domain.Item) (*SyncResult, error) {
	if items == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgCatalogNil)
	}
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	hash := catalogHash(items)
	if hash == s.lastHash {
		log.Debug(LogMsgCatalogUnchanged)
		return &SyncResult{}, nil
	}

	existing, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}
	byName := make(map[string]domain.Item, len(existing))
	for _, it := range existing {
		byName[it.InternalName] = it
	}

	result := &SyncResult{}
	keep := make([]string, 0, len(items))
	for _, def := range items {
		keep = append(keep, def.InternalName)
		if err := s.syncOne(ctx, def, byName, result); err != nil {
			return nil, err
		}
	}

	retired, err := s.repo.DeactivateMissing(ctx, keep)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDeactivateItemsFailed, err)
	}
	result.ItemsRetired = retired
	if retired > 0 {
		log.Info(LogMsgRetiredItems, "count", retired)
	}

	s.lastHash = hash
	log.Info(LogMsgSyncCompleted,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped,
		"retired", result.ItemsRetired)
	return result, nil
}

func (s *itemSyncer) syncOne(ctx context.Context, def domain.Item, active map[string]domain.Item, result *SyncResult) error {
	log := logger.FromContext(ctx)

	current, ok := active[def.InternalName]
	if !ok {
		// Retired items come back through an update so their id is preserved.
		stored, err := s.repo.GetItemByName(ctx, def.InternalName)
		if err != nil {
			return fmt.Errorf(ErrMsgLookupItemFailed, def.InternalName, err)
		}
		if stored == nil {
			id, err := s.repo.InsertItem(ctx, &def)
			if err != nil {
				return fmt.Errorf(ErrMsgInsertItemFailed, def.InternalName, err)
			}
			result.ItemsInserted++
			log.Info(LogMsgInsertedItem, "internal_name", def.InternalName, "id", id)
			return nil
		}
		current = *stored
		ok = false
	}

	if ok && sameAttributes(current, def) {
		result.ItemsSkipped++
		return nil
	}
	if err := s.repo.UpdateItem(ctx, current.ID, &def); err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, def.InternalName, err)
	}
	result.ItemsUpdated++
	log.Info(LogMsgUpdatedItem, "internal_name", def.InternalName, "id", current.ID)
	return nil
}

func sameAttributes(a, b domain.Item) bool {
	return a.DisplayName == b.DisplayName &&
		a.Tier == b.Tier &&
		a.Season == b.Season &&
		a.Region == b.Region
}

// catalogHash is order-independent.
func catalogHash(items []domain.Item) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.InternalName + "\x00" + it.DisplayName + "\x00" + string(it.Tier) + "\x00" + it.Season + "\x00" + it.Region
	}
	sort.Strings(lines)
	h := sha256.New()
	for _, l := range lines {
		h.Write([]byte(l))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
