package gacha

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

// Opening is the outcome of opening a pack one or more times.
type Opening struct {
	Results     []domain.DrawResult
	TotalRefund int64
	Draws       []event.DrawPayloadV1
}

// Granted is a resolved reward. Credit is the currency the caller must add to
// the wallet: points, or the duplicate refunds of an opened pack.
type Granted struct {
	Reward  domain.Reward
	Credit  int64
	Opening *Opening
}

// Granter resolves pulls and rewards inside a transaction owned by the caller.
// Tier selection and item selection are separate steps.
type Granter struct {
	items  repository.Item
	drawer *weight.Drawer
	ids    *snowflake.Node
	cache  *candidateCache
	now    func() time.Time
}

// NewGranter creates a Granter. A nil drawer uses the crypto random source.
func NewGranter(items repository.Item, drawer *weight.Drawer, ids *snowflake.Node, cacheSize int, cacheTTL time.Duration) *Granter {
	if drawer == nil {
		drawer = weight.NewDrawer(nil)
	}
	return &Granter{
		items:  items,
		drawer: drawer,
		ids:    ids,
		cache:  newCandidateCache(cacheSize, cacheTTL),
		now:    time.Now,
	}
}

// Invalidate drops cached candidate pools. Call after a catalog reload or item sync.
func (g *Granter) Invalidate(ctx context.Context) {
	g.cache.Clear()
	logger.FromContext(ctx).Debug(LogMsgCandidateCacheClear)
}

// OpenPack draws count pulls from pack for playerID using tx.
// A pull resolving to an item the player already owns (including earlier pulls
// of the same batch) is a duplicate: ownership is untouched and the pull refunds
// floor(pack cost x refund rate). Otherwise the ownership record is created.
// paid marks pulls the player was charged for; it only affects reporting.
func (g *Granter) OpenPack(ctx context.Context, tx repository.GachaTx, cat *rewardconfig.Catalog,
	playerID uuid.UUID, pack *rewardconfig.Pack, count int, source string, paid bool,
) (*Opening, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPackOpenedWithNonPositiveRun)
	}

	refund := cat.Refund(pack.Cost)
	var cost int64
	if paid {
		cost = pack.Cost
	}

	now := g.now().UTC()
	owned := make(map[int64]bool, count)
	opening := &Opening{
		Results: make([]domain.DrawResult, 0, count),
		Draws:   make([]event.DrawPayloadV1, 0, count),
	}
	records := make([]domain.DrawRecord, 0, count)

	for i := 0; i < count; i++ {
		outcome := g.drawer.Draw(pack.Table)
		item, err := g.pickItem(ctx, pack.Filter(outcome.Tier))
		if err != nil {
			return nil, err
		}

		duplicate, err := g.isOwned(ctx, tx, owned, playerID, item.ID)
		if err != nil {
			return nil, err
		}

		result := domain.DrawResult{
			Item:        item,
			Tier:        item.Tier,
			IsDuplicate: duplicate,
			Roll:        outcome.Roll,
			Lo:          outcome.Lo,
			Hi:          outcome.Hi,
		}
		if duplicate {
			result.Refund = refund
			opening.TotalRefund += refund
		} else {
			if _, err := tx.AddOwnership(ctx, playerID, item.ID); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddOwnership, err)
			}
			owned[item.ID] = true
		}

		opening.Results = append(opening.Results, result)
		opening.Draws = append(opening.Draws, event.DrawPayloadV1{
			PlayerID:    playerID,
			PackType:    pack.Type,
			Source:      source,
			Tier:        string(item.Tier),
			ItemName:    item.InternalName,
			IsDuplicate: duplicate,
			Refund:      result.Refund,
			Cost:        cost,
		})
		records = append(records, domain.DrawRecord{
			ID:          g.ids.Generate().Int64(),
			PlayerID:    playerID,
			PackType:    pack.Type,
			Source:      source,
			ItemID:      item.ID,
			Tier:        item.Tier,
			Roll:        outcome.Roll,
			Lo:          outcome.Lo,
			Hi:          outcome.Hi,
			IsDuplicate: duplicate,
			Refund:      result.Refund,
			CreatedAt:   now,
		})
	}

	if err := tx.RecordDraws(ctx, records); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordDraws, err)
	}
	return opening, nil
}

// Grant resolves spec for playerID inside tx.
// Item rewards always add one to the acquisition count, even for owned items.
// Pack rewards open the pack once at no cost.
func (g *Granter) Grant(ctx context.Context, tx repository.GachaTx, cat *rewardconfig.Catalog,
	playerID uuid.UUID, spec rewardconfig.RewardSpec, source string,
) (*Granted, error) {
	switch spec.Type {
	case domain.RewardTypePoints:
		amount := weight.UniformInt(g.drawer.Source(), spec.Min, spec.Max)
		return &Granted{Reward: domain.PointsReward(amount), Credit: amount}, nil

	case domain.RewardTypeItem:
		item, err := g.items.GetItemByName(ctx, spec.Item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToResolveItem, err)
		}
		if item == nil {
			return nil, fmt.Errorf("%w: "+ErrMsgRewardItemMissing, domain.ErrInvalidConfiguration, spec.Item)
		}
		if _, err := tx.AddOwnership(ctx, playerID, item.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddOwnership, err)
		}
		return &Granted{Reward: domain.ItemReward(*item)}, nil

	case domain.RewardTypePack:
		pack, err := cat.Pack(spec.Pack)
		if err != nil {
			return nil, err
		}
		opening, err := g.OpenPack(ctx, tx, cat, playerID, pack, 1, source, false)
		if err != nil {
			return nil, err
		}
		return &Granted{
			Reward: domain.Reward{
				Type:        domain.RewardTypePack,
				PackType:    pack.Type,
				PackResults: opening.Results,
			},
			Credit:  opening.TotalRefund,
			Opening: opening,
		}, nil
	}
	return nil, fmt.Errorf("%w: "+ErrMsgUnknownRewardType, domain.ErrInvalidConfiguration, spec.Type)
}

func (g *Granter) pickItem(ctx context.Context, filter domain.ItemFilter) (domain.Item, error) {
	pool, ok := g.cache.Get(filter)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgCandidateCacheMiss, "filter", filter.Key())
		items, err := g.items.ListItems(ctx, filter)
		if err != nil {
			return domain.Item{}, fmt.Errorf("%s: %w", ErrContextFailedToLoadCandidates, err)
		}
		pool = items
		if len(pool) > 0 {
			g.cache.Set(filter, pool)
		}
	}
	if len(pool) == 0 {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrNoEligibleItems, filter.Key())
	}
	return pool[g.drawer.Pick(len(pool))], nil
}

func (g *Granter) isOwned(ctx context.Context, tx repository.GachaTx, owned map[int64]bool, playerID uuid.UUID, itemID int64) (bool, error) {
	if owned[itemID] {
		return true, nil
	}
	rec, err := tx.GetOwnership(ctx, playerID, itemID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToCheckOwnership, err)
	}
	if rec != nil {
		owned[itemID] = true
		return true, nil
	}
	return false, nil
}
