// Package memstore is an in-memory implementation of every repository
// interface, used by service tests in place of PostgreSQL.
//
// Transactions are serialised by a single mutex and work on a private copy of
// the committed state, so Rollback (or a failed Commit) discards every write.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

var (
	_ repository.Player      = (*Store)(nil)
	_ repository.Item        = (*Store)(nil)
	_ repository.Gacha       = (*Store)(nil)
	_ repository.Lottery     = (*Store)(nil)
	_ repository.Raid        = (*Store)(nil)
	_ repository.Maintenance = (*Store)(nil)
	_ repository.LotteryTx   = (*Tx)(nil)
	_ repository.RaidTx      = (*Tx)(nil)
)

type ownershipKey struct {
	player uuid.UUID
	item   int64
}

type claimKey struct {
	player uuid.UUID
	pack   string
	day    time.Time
}

type contributionKey struct {
	raid   int64
	player uuid.UUID
}

type itemRow struct {
	item   domain.Item
	active bool
}

type state struct {
	players       map[uuid.UUID]domain.Player
	items         map[int64]itemRow
	nextItemID    int64
	ownership     map[ownershipKey]domain.OwnershipRecord
	mileage       map[uuid.UUID]domain.MileageCounter
	freeClaims    map[claimKey]struct{}
	draws         []domain.DrawRecord
	boards        map[string]domain.LotteryBoard
	picks         []domain.LotteryPick
	raids         map[int64]domain.RaidBoss
	nextRaidID    int64
	contributions map[contributionKey]domain.RaidContribution
	raidRewards   []domain.RaidReward
}

func newState() *state {
	return &state{
		players:       make(map[uuid.UUID]domain.Player),
		items:         make(map[int64]itemRow),
		ownership:     make(map[ownershipKey]domain.OwnershipRecord),
		mileage:       make(map[uuid.UUID]domain.MileageCounter),
		freeClaims:    make(map[claimKey]struct{}),
		boards:        make(map[string]domain.LotteryBoard),
		raids:         make(map[int64]domain.RaidBoss),
		contributions: make(map[contributionKey]domain.RaidContribution),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.players {
		c.players[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.nextItemID = s.nextItemID
	for k, v := range s.ownership {
		c.ownership[k] = v
	}
	for k, v := range s.mileage {
		v.ClaimedMilestones = append([]int64{}, v.ClaimedMilestones...)
		c.mileage[k] = v
	}
	for k := range s.freeClaims {
		c.freeClaims[k] = struct{}{}
	}
	c.draws = append(c.draws, s.draws...)
	for k, v := range s.boards {
		v.Cells = append([]domain.LotteryCell{}, v.Cells...)
		c.boards[k] = v
	}
	c.picks = append(c.picks, s.picks...)
	for k, v := range s.raids {
		c.raids[k] = v
	}
	c.nextRaidID = s.nextRaidID
	for k, v := range s.contributions {
		c.contributions[k] = v
	}
	c.raidRewards = append(c.raidRewards, s.raidRewards...)
	return c
}

// Store holds the committed state.
type Store struct {
	txMu sync.Mutex

	mu          sync.RWMutex
	data        *state
	commitFails []error
	commits     int
}

// New returns an empty store.
func New() *Store {
	return &Store{data: newState()}
}

// FailCommits makes the next len(errs) commits fail with the given errors in order.
// The failed transaction is discarded.
func (s *Store) FailCommits(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitFails = append(s.commitFails, errs...)
}

// Commits returns the number of successful commits.
func (s *Store) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) write(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

func (s *Store) begin(ctx context.Context) (*Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()
	return &Tx{store: s, st: work}, nil
}

// ---- Seeding helpers ----

// SeedPlayer creates a player with the given balance and returns its id.
func (s *Store) SeedPlayer(username string, balance int64) uuid.UUID {
	id := uuid.New()
	now := time.Now().UTC()
	s.write(func(st *state) {
		st.players[id] = domain.Player{ID: id, Username: username, Balance: balance, CreatedAt: now, UpdatedAt: now}
	})
	return id
}

// SeedItems inserts active items and returns them with ids assigned.
func (s *Store) SeedItems(items ...domain.Item) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	s.write(func(st *state) {
		for _, it := range items {
			st.nextItemID++
			it.ID = st.nextItemID
			st.items[it.ID] = itemRow{item: it, active: true}
			out = append(out, it)
		}
	})
	return out
}

// SeedOwnership gives the player count copies of item.
func (s *Store) SeedOwnership(playerID uuid.UUID, itemID, count int64) {
	s.write(func(st *state) {
		st.ownership[ownershipKey{playerID, itemID}] = domain.OwnershipRecord{
			PlayerID: playerID, ItemID: itemID, Count: count, FirstAcquiredAt: time.Now().UTC(),
		}
	})
}

// SeedMileage sets the player's mileage count.
func (s *Store) SeedMileage(playerID uuid.UUID, count int64) {
	s.write(func(st *state) {
		m := st.mileage[playerID]
		m.PlayerID = playerID
		m.Count = count
		if m.ClaimedMilestones == nil {
			m.ClaimedMilestones = []int64{}
		}
		st.mileage[playerID] = m
	})
}

// SeedContribution stores a contribution row as is.
func (s *Store) SeedContribution(c domain.RaidContribution) {
	s.write(func(st *state) {
		st.contributions[contributionKey{c.RaidID, c.PlayerID}] = c
	})
}

// ---- Inspection helpers ----

// Balance returns the committed balance of a player.
func (s *Store) Balance(playerID uuid.UUID) int64 {
	var b int64
	s.read(func(st *state) { b = st.players[playerID].Balance })
	return b
}

// Ownership returns the committed record, or nil.
func (s *Store) Ownership(playerID uuid.UUID, itemID int64) *domain.OwnershipRecord {
	var out *domain.OwnershipRecord
	s.read(func(st *state) {
		if rec, ok := st.ownership[ownershipKey{playerID, itemID}]; ok {
			out = &rec
		}
	})
	return out
}

// Draws returns every committed draw record.
func (s *Store) Draws() []domain.DrawRecord {
	var out []domain.DrawRecord
	s.read(func(st *state) { out = append(out, st.draws...) })
	return out
}

// Picks returns every committed lottery pick.
func (s *Store) Picks() []domain.LotteryPick {
	var out []domain.LotteryPick
	s.read(func(st *state) { out = append(out, st.picks...) })
	return out
}

// Board returns the committed board including its top cell, or nil.
func (s *Store) Board(boardID string) *domain.LotteryBoard {
	var out *domain.LotteryBoard
	s.read(func(st *state) {
		if b, ok := st.boards[boardID]; ok {
			b.Cells = append([]domain.LotteryCell{}, b.Cells...)
			out = &b
		}
	})
	return out
}

// Contribution returns the committed contribution, or nil.
func (s *Store) Contribution(raidID int64, playerID uuid.UUID) *domain.RaidContribution {
	var out *domain.RaidContribution
	s.read(func(st *state) {
		if c, ok := st.contributions[contributionKey{raidID, playerID}]; ok {
			out = &c
		}
	})
	return out
}

// ---- repository.Player ----

// CreatePlayer implements repository.Player.
func (s *Store) CreatePlayer(_ context.Context, player *domain.Player) error {
	var err error
	s.write(func(st *state) {
		for _, p := range st.players {
			if p.Username == player.Username {
				err = fmt.Errorf("%w: username %q is taken", domain.ErrInvalidInput, player.Username)
				return
			}
		}
		now := time.Now().UTC()
		player.CreatedAt, player.UpdatedAt = now, now
		st.players[player.ID] = *player
	})
	return err
}

// GetPlayer implements repository.Player.
func (s *Store) GetPlayer(_ context.Context, playerID uuid.UUID) (*domain.Player, error) {
	var out *domain.Player
	s.read(func(st *state) {
		if p, ok := st.players[playerID]; ok {
			out = &p
		}
	})
	if out == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return out, nil
}

// GetMileage implements repository.Player and repository.Gacha.
func (s *Store) GetMileage(_ context.Context, playerID uuid.UUID) (*domain.MileageCounter, error) {
	var out domain.MileageCounter
	s.read(func(st *state) { out = mileageOf(st, playerID) })
	return &out, nil
}

// BeginWalletTx implements repository.Player.
func (s *Store) BeginWalletTx(ctx context.Context) (repository.WalletTx, error) {
	return s.begin(ctx)
}

// ---- repository.Item ----

// GetAllItems implements repository.Item.
func (s *Store) GetAllItems(_ context.Context) ([]domain.Item, error) {
	return s.items(func(domain.Item) bool { return true }), nil
}

// GetItemByName implements repository.Item. Retired items are returned too.
func (s *Store) GetItemByName(_ context.Context, internalName string) (*domain.Item, error) {
	var out *domain.Item
	s.read(func(st *state) {
		for _, row := range st.items {
			if row.item.InternalName == internalName {
				it := row.item
				out = &it
				return
			}
		}
	})
	return out, nil
}

// ListItems implements repository.Item.
func (s *Store) ListItems(_ context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	return s.items(filter.Matches), nil
}

func (s *Store) items(match func(domain.Item) bool) []domain.Item {
	out := []domain.Item{}
	s.read(func(st *state) {
		for _, row := range st.items {
			if row.active && match(row.item) {
				out = append(out, row.item)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// InsertItem implements repository.Item.
func (s *Store) InsertItem(_ context.Context, item *domain.Item) (int64, error) {
	var id int64
	s.write(func(st *state) {
		st.nextItemID++
		id = st.nextItemID
		it := *item
		it.ID = id
		st.items[id] = itemRow{item: it, active: true}
	})
	return id, nil
}

// UpdateItem implements repository.Item. It also reactivates a retired item.
func (s *Store) UpdateItem(_ context.Context, itemID int64, item *domain.Item) error {
	var err error
	s.write(func(st *state) {
		if _, ok := st.items[itemID]; !ok {
			err = fmt.Errorf("item %d not found", itemID)
			return
		}
		it := *item
		it.ID = itemID
		st.items[itemID] = itemRow{item: it, active: true}
	})
	return err
}

// DeactivateMissing implements repository.Item.
func (s *Store) DeactivateMissing(_ context.Context, keep []string) (int64, error) {
	kept := make(map[string]bool, len(keep))
	for _, k := range keep {
		kept[k] = true
	}
	var n int64
	s.write(func(st *state) {
		for id, row := range st.items {
			if row.active && !kept[row.item.InternalName] {
				row.active = false
				st.items[id] = row
				n++
			}
		}
	})
	return n, nil
}

// ---- repository.Gacha ----

// BeginGachaTx implements repository.Gacha.
func (s *Store) BeginGachaTx(ctx context.Context) (repository.GachaTx, error) {
	return s.begin(ctx)
}

// HasClaimedFreeDraw implements repository.Gacha.
func (s *Store) HasClaimedFreeDraw(_ context.Context, playerID uuid.UUID, packType string, day time.Time) (bool, error) {
	var ok bool
	s.read(func(st *state) {
		_, ok = st.freeClaims[claimKey{playerID, packType, domain.UTCDay(day)}]
	})
	return ok, nil
}

// GetCollection implements repository.Gacha.
func (s *Store) GetCollection(_ context.Context, playerID uuid.UUID) ([]domain.CollectionEntry, error) {
	out := []domain.CollectionEntry{}
	s.read(func(st *state) {
		for key, rec := range st.ownership {
			if key.player != playerID {
				continue
			}
			out = append(out, domain.CollectionEntry{
				Item:            st.items[key.item].item,
				Count:           rec.Count,
				FirstAcquiredAt: rec.FirstAcquiredAt,
			})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out, nil
}

// ---- repository.Lottery ----

// BeginLotteryTx implements repository.Lottery.
func (s *Store) BeginLotteryTx(ctx context.Context) (repository.LotteryTx, error) {
	return s.begin(ctx)
}

// GetBoard implements repository.Lottery.
func (s *Store) GetBoard(_ context.Context, boardID string) (*domain.LotteryBoard, error) {
	return s.Board(boardID), nil
}

// ---- repository.Raid ----

// BeginRaidTx implements repository.Raid.
func (s *Store) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	return s.begin(ctx)
}

// GetActiveRaid implements repository.Raid.
func (s *Store) GetActiveRaid(_ context.Context) (*domain.RaidBoss, error) {
	var out *domain.RaidBoss
	s.read(func(st *state) { out = activeRaid(st) })
	return out, nil
}

// GetRaidTotals implements repository.Raid.
func (s *Store) GetRaidTotals(_ context.Context, raidID int64) (int64, int, error) {
	var total int64
	var n int
	s.read(func(st *state) {
		for key, c := range st.contributions {
			if key.raid == raidID && c.Damage > 0 {
				total += c.Damage
				n++
			}
		}
	})
	return total, n, nil
}

// TopContributors implements repository.Raid.
func (s *Store) TopContributors(_ context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error) {
	var rows []domain.RaidContribution
	s.read(func(st *state) { rows = contributionsOf(st, raidID) })
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Damage != rows[j].Damage {
			return rows[i].Damage > rows[j].Damage
		}
		if !rows[i].UpdatedAt.Equal(rows[j].UpdatedAt) {
			return rows[i].UpdatedAt.Before(rows[j].UpdatedAt)
		}
		return rows[i].PlayerID.String() < rows[j].PlayerID.String()
	})
	out := []domain.LeaderboardEntry{}
	for _, c := range rows {
		if c.Damage <= 0 || len(out) == limit {
			continue
		}
		out = append(out, domain.LeaderboardEntry{Rank: len(out) + 1, PlayerID: c.PlayerID, Damage: c.Damage})
	}
	return out, nil
}

// GetRaidRewards implements repository.Raid.
func (s *Store) GetRaidRewards(_ context.Context, raidID int64) ([]domain.RaidReward, error) {
	out := []domain.RaidReward{}
	s.read(func(st *state) {
		for _, r := range st.raidRewards {
			if r.RaidID == raidID {
				out = append(out, r)
			}
		}
	})
	return out, nil
}

// ---- repository.Maintenance ----

// ResetDailyRaidAttempts implements repository.Maintenance.
func (s *Store) ResetDailyRaidAttempts(_ context.Context, day time.Time) (int64, error) {
	day = domain.UTCDay(day)
	var n int64
	s.write(func(st *state) {
		for key, c := range st.contributions {
			if c.AttemptDay.Before(day) && c.DailyAttempts > 0 {
				c.DailyAttempts = 0
				c.AttemptDay = day
				st.contributions[key] = c
				n++
			}
		}
	})
	return n, nil
}

// PruneFreeDrawClaims implements repository.Maintenance.
func (s *Store) PruneFreeDrawClaims(_ context.Context, before time.Time) (int64, error) {
	var n int64
	s.write(func(st *state) {
		for key := range st.freeClaims {
			if key.day.Before(before) {
				delete(st.freeClaims, key)
				n++
			}
		}
	})
	return n, nil
}

func mileageOf(st *state, playerID uuid.UUID) domain.MileageCounter {
	m, ok := st.mileage[playerID]
	if !ok {
		return domain.MileageCounter{PlayerID: playerID, ClaimedMilestones: []int64{}}
	}
	m.ClaimedMilestones = append([]int64{}, m.ClaimedMilestones...)
	return m
}

func activeRaid(st *state) *domain.RaidBoss {
	for _, r := range st.raids {
		if r.Active {
			out := r
			return &out
		}
	}
	return nil
}

func contributionsOf(st *state, raidID int64) []domain.RaidContribution {
	var out []domain.RaidContribution
	for key, c := range st.contributions {
		if key.raid == raidID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID.String() < out[j].PlayerID.String() })
	return out
}

var errTxDone = errors.New(domain.ErrMsgTxClosed)
