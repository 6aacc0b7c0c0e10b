package gacha

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
	"github.com/osse101/RewardEngine_Go/internal/testing/memstore"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

const testConfig = `
gacha:
  refund_rate: 0.5
  packs:
    - type: solo
      cost: 1000
      weights:
        - { tier: COMMON, weight: 100 }
        - { tier: ICON, weight: 0 }
    - type: mixed
      cost: 200
      weights:
        - { tier: COMMON, weight: 50 }
        - { tier: RARE, weight: 50 }
    - type: seasonal
      cost: 100
      season: s1
      weights:
        - { tier: EPIC, weight: 100 }
    - type: daily
      free: true
      weights:
        - { tier: COMMON, weight: 100 }
  mileage:
    - milestone: 1
      reward: { type: points, min: 500 }
    - milestone: 2
      reward: { type: pack, pack: solo }
    - milestone: 3
      reward: { type: item, item: icon_founder }
catalog:
  - { internal_name: common_a, tier: COMMON }
  - { internal_name: epic_s1, tier: EPIC, season: s1 }
  - { internal_name: epic_s2, tier: EPIC, season: s2 }
  - { internal_name: rare_a, tier: RARE }
  - { internal_name: icon_founder, tier: ICON }
`

type fixture struct {
	store   *memstore.Store
	svc     *service
	granter *Granter
	bus     *event.MemoryBus
	events  *eventLog
	items   map[string]domain.Item
}

type eventLog struct {
	mu     sync.Mutex
	events []event.Event
}

func (l *eventLog) handle(_ context.Context, evt event.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, evt)
	return nil
}

func (l *eventLog) ofType(t event.Type) []event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []event.Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cat, err := rewardconfig.Parse([]byte(testConfig))
	require.NoError(t, err)
	require.Empty(t, cat.Issues())

	store := memstore.New()
	items := make(map[string]domain.Item)
	for _, it := range store.SeedItems(cat.Items()...) {
		items[it.InternalName] = it
	}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	granter := NewGranter(store, weight.NewDrawer(weight.NewSeededSource(42)), node, 0, time.Minute)
	bus := event.NewMemoryBus()
	log := &eventLog{}
	bus.Subscribe(event.DrawCompleted, log.handle)
	bus.Subscribe(event.MileageClaimed, log.handle)

	retry := repository.RetryPolicy{MaxAttempts: 3}
	svc := NewService(store, rewardconfig.NewStaticStore(cat), granter, bus, retry).(*service)

	return &fixture{store: store, svc: svc, granter: granter, bus: bus, events: log, items: items}
}

func TestDraw_FirstCopyThenDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	player := f.store.SeedPlayer("alice", 10000)
	common := f.items["common_a"]

	first, err := f.svc.Draw(ctx, player, "solo")
	require.NoError(t, err)
	require.Len(t, first.Results, 1)
	assert.Equal(t, common.ID, first.Results[0].Item.ID)
	assert.False(t, first.Results[0].IsDuplicate)
	assert.Zero(t, first.Results[0].Refund)
	assert.Equal(t, int64(9000), first.Balance)
	assert.Equal(t, int64(1), first.Mileage)

	second, err := f.svc.Draw(ctx, player, "solo")
	require.NoError(t, err)
	assert.True(t, second.Results[0].IsDuplicate)
	assert.Equal(t, int64(500), second.Results[0].Refund)
	assert.Equal(t, int64(8500), second.Balance)
	assert.Equal(t, int64(2), second.Mileage, "duplicates still count toward mileage")

	rec := f.store.Ownership(player, common.ID)
	require.NotNil(t, rec)
	assert.Equal(t, int64(1), rec.Count, "duplicates never increment ownership")
	assert.Equal(t, int64(8500), f.store.Balance(player))
}

func TestDraw_RecordsAuditIntervals(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 10000)

	_, err := f.svc.Draw(context.Background(), player, "solo")
	require.NoError(t, err)

	draws := f.store.Draws()
	require.Len(t, draws, 1)
	d := draws[0]
	assert.NotZero(t, d.ID)
	assert.Equal(t, domain.DrawSourceGacha, d.Source)
	assert.Equal(t, domain.TierCommon, d.Tier)
	assert.Equal(t, int64(0), d.Lo)
	assert.Equal(t, 100*weight.Scale, d.Hi)
	assert.True(t, d.Roll >= d.Lo && d.Roll < d.Hi)
}

func TestDraw_SeasonFilterRestrictsPool(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 10000)

	resp, err := f.svc.Draw(context.Background(), player, "seasonal")
	require.NoError(t, err)
	assert.Equal(t, "epic_s1", resp.Results[0].Item.InternalName)
}

func TestDraw_InsufficientFundsRollsBack(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 999)

	_, err := f.svc.Draw(context.Background(), player, "solo")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, int64(999), f.store.Balance(player))
	assert.Empty(t, f.store.Draws())
	assert.Nil(t, f.store.Ownership(player, f.items["common_a"].ID))
	assert.Empty(t, f.events.ofType(event.DrawCompleted))
}

func TestDraw_InputErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	player := f.store.SeedPlayer("alice", 10000)

	tests := []struct {
		name    string
		player  uuid.UUID
		pack    string
		wantErr error
	}{
		{"unknown pack", player, "nope", domain.ErrPackNotFound},
		{"empty pack", player, "", domain.ErrInvalidInput},
		{"nil player", uuid.Nil, "solo", domain.ErrInvalidInput},
		{"unknown player", uuid.New(), "solo", domain.ErrPlayerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Draw(ctx, tt.player, tt.pack)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDraw_FreePackOncePerUTCDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	player := f.store.SeedPlayer("alice", 0)

	day := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return day }
	f.granter.now = f.svc.now

	resp, err := f.svc.Draw(ctx, player, "daily")
	require.NoError(t, err)
	assert.Zero(t, resp.Cost)
	assert.Zero(t, resp.Mileage, "free draws do not add mileage")

	_, err = f.svc.Draw(ctx, player, "daily")
	require.ErrorIs(t, err, domain.ErrAlreadyClaimedToday)

	packs, err := f.svc.ListPacks(ctx, player)
	require.NoError(t, err)
	for _, p := range packs {
		if p.Type == "daily" {
			assert.True(t, p.FreeDrawUsedToday)
		}
	}

	f.svc.now = func() time.Time { return day.Add(2 * time.Minute) }
	_, err = f.svc.Draw(ctx, player, "daily")
	require.NoError(t, err, "a new UTC day allows another free draw")
}

func TestDrawTen_SingleDebitAndBatchDuplicates(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 5000)

	resp, err := f.svc.DrawTen(context.Background(), player, "mixed")
	require.NoError(t, err)
	require.Len(t, resp.Results, domain.DrawTenCount)
	assert.Equal(t, int64(2000), resp.Cost)

	var dups, refunds int64
	seen := map[int64]bool{}
	for _, r := range resp.Results {
		if seen[r.Item.ID] {
			assert.True(t, r.IsDuplicate, "second copy within a batch is a duplicate")
		} else {
			assert.False(t, r.IsDuplicate)
		}
		seen[r.Item.ID] = true
		if r.IsDuplicate {
			dups++
			refunds += r.Refund
		}
	}
	assert.Equal(t, dups*100, refunds)
	assert.Equal(t, refunds, resp.TotalRefund)
	assert.Equal(t, int64(5000)-2000+refunds, resp.Balance)
	assert.Equal(t, resp.Balance, f.store.Balance(player))
	assert.Equal(t, int64(domain.DrawTenCount), resp.Mileage)

	for id := range seen {
		assert.Equal(t, int64(1), f.store.Ownership(player, id).Count)
	}
	assert.Len(t, f.store.Draws(), domain.DrawTenCount)

	evts := f.events.ofType(event.DrawCompleted)
	require.Len(t, evts, 1)
	payload, err := event.DecodePayload[event.DrawCompletedPayloadV1](evts[0].Payload)
	require.NoError(t, err)
	assert.Len(t, payload.Draws, domain.DrawTenCount)
}

func TestDrawTen_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	poor := f.store.SeedPlayer("poor", 1999)
	_, err := f.svc.DrawTen(ctx, poor, "mixed")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(1999), f.store.Balance(poor))

	rich := f.store.SeedPlayer("rich", 100000)
	_, err = f.svc.DrawTen(ctx, rich, "daily")
	require.ErrorIs(t, err, domain.ErrFreePackNotBatchable)
}

func TestDraw_RetriesContention(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 10000)

	f.store.FailCommits(fmt.Errorf("%w: lock timeout", domain.ErrContention))
	resp, err := f.svc.Draw(context.Background(), player, "solo")
	require.NoError(t, err)
	assert.Equal(t, int64(9000), resp.Balance)
	assert.Len(t, f.store.Draws(), 1, "the failed attempt left nothing behind")
}

func TestDraw_ContentionExhausted(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 10000)

	contention := fmt.Errorf("%w: lock timeout", domain.ErrContention)
	f.store.FailCommits(contention, contention, contention)
	_, err := f.svc.Draw(context.Background(), player, "solo")
	require.ErrorIs(t, err, domain.ErrContention)
	assert.Equal(t, int64(10000), f.store.Balance(player))
	assert.Zero(t, f.store.Commits())
}

func TestDraw_ConcurrentBalanceConservation(t *testing.T) {
	f := newFixture(t)
	player := f.store.SeedPlayer("alice", 2000)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Draw(context.Background(), player, "mixed"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	var refunds int64
	for _, d := range f.store.Draws() {
		refunds += d.Refund
	}
	assert.Equal(t, 8, succeeded)
	assert.Equal(t, int64(2000)-8*200+refunds, f.store.Balance(player))
}

func TestClaimMileage(t *testing.T) {
	ctx := context.Background()

	t.Run("points milestone once", func(t *testing.T) {
		f := newFixture(t)
		player := f.store.SeedPlayer("alice", 0)
		f.store.SeedMileage(player, 1)

		resp, err := f.svc.ClaimMileage(ctx, player, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.RewardTypePoints, resp.Reward.Type)
		assert.Equal(t, int64(500), resp.Reward.Points)
		assert.Equal(t, int64(500), resp.Balance)

		_, err = f.svc.ClaimMileage(ctx, player, 1)
		require.ErrorIs(t, err, domain.ErrNotEligible)
		assert.Equal(t, int64(500), f.store.Balance(player))
		assert.Len(t, f.events.ofType(event.MileageClaimed), 1)
	})

	t.Run("pack milestone opens the pack for free", func(t *testing.T) {
		f := newFixture(t)
		player := f.store.SeedPlayer("alice", 0)
		f.store.SeedMileage(player, 2)

		resp, err := f.svc.ClaimMileage(ctx, player, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.RewardTypePack, resp.Reward.Type)
		assert.Equal(t, "solo", resp.Reward.PackType)
		require.Len(t, resp.Reward.PackResults, 1)
		assert.Zero(t, resp.Balance)
		assert.Equal(t, int64(2), resp.Mileage, "claims do not consume mileage")
	})

	t.Run("item milestone grants the item", func(t *testing.T) {
		f := newFixture(t)
		player := f.store.SeedPlayer("alice", 0)
		f.store.SeedMileage(player, 3)
		icon := f.items["icon_founder"]
		f.store.SeedOwnership(player, icon.ID, 1)

		resp, err := f.svc.ClaimMileage(ctx, player, 3)
		require.NoError(t, err)
		require.NotNil(t, resp.Reward.Item)
		assert.Equal(t, "icon_founder", resp.Reward.Item.InternalName)
		assert.Equal(t, int64(2), f.store.Ownership(player, icon.ID).Count)
	})

	t.Run("not eligible cases", func(t *testing.T) {
		f := newFixture(t)
		player := f.store.SeedPlayer("alice", 0)
		f.store.SeedMileage(player, 1)

		_, err := f.svc.ClaimMileage(ctx, player, 3)
		assert.ErrorIs(t, err, domain.ErrNotEligible, "below milestone")
		_, err = f.svc.ClaimMileage(ctx, player, 7)
		assert.ErrorIs(t, err, domain.ErrNotEligible, "unknown milestone")
		_, err = f.svc.ClaimMileage(ctx, player, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestListPacks_AnonymousAndGetCollection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	packs, err := f.svc.ListPacks(ctx, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, packs, 4)
	assert.Equal(t, "solo", packs[0].Type)
	assert.False(t, packs[3].FreeDrawUsedToday)

	player := f.store.SeedPlayer("alice", 10000)
	_, err = f.svc.Draw(ctx, player, "solo")
	require.NoError(t, err)

	entries, err := f.svc.GetCollection(ctx, player)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "common_a", entries[0].Item.InternalName)
	assert.Equal(t, int64(1), entries[0].Count)
}
