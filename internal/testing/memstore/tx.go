package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Tx implements every transaction interface against a private copy of the state.
type Tx struct {
	store *Store
	st    *state
	done  bool
}

// Commit publishes the transaction's writes, unless a failure was queued with FailCommits.
func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	defer t.store.txMu.Unlock()

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if len(t.store.commitFails) > 0 {
		err := t.store.commitFails[0]
		t.store.commitFails = t.store.commitFails[1:]
		return err
	}
	t.store.data = t.st
	t.store.commits++
	return nil
}

// Rollback discards the transaction. After Commit it reports a closed tx.
func (t *Tx) Rollback(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.store.txMu.Unlock()
	return nil
}

// ---- Wallet ----

func (t *Tx) GetPlayerForUpdate(_ context.Context, playerID uuid.UUID) (*domain.Player, error) {
	p, ok := t.st.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

func (t *Tx) AdjustBalance(_ context.Context, playerID uuid.UUID, delta int64) (int64, error) {
	p, ok := t.st.players[playerID]
	if !ok {
		return 0, domain.ErrPlayerNotFound
	}
	if p.Balance+delta < 0 {
		return 0, domain.ErrInsufficientFunds
	}
	p.Balance += delta
	p.UpdatedAt = time.Now().UTC()
	t.st.players[playerID] = p
	return p.Balance, nil
}

// ---- Gacha ----

func (t *Tx) ClaimFreeDraw(_ context.Context, playerID uuid.UUID, packType string, day time.Time) (bool, error) {
	key := claimKey{playerID, packType, domain.UTCDay(day)}
	if _, ok := t.st.freeClaims[key]; ok {
		return false, nil
	}
	t.st.freeClaims[key] = struct{}{}
	return true, nil
}

func (t *Tx) GetOwnership(_ context.Context, playerID uuid.UUID, itemID int64) (*domain.OwnershipRecord, error) {
	rec, ok := t.st.ownership[ownershipKey{playerID, itemID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (t *Tx) AddOwnership(_ context.Context, playerID uuid.UUID, itemID int64) (*domain.OwnershipRecord, error) {
	key := ownershipKey{playerID, itemID}
	rec, ok := t.st.ownership[key]
	if !ok {
		rec = domain.OwnershipRecord{PlayerID: playerID, ItemID: itemID, FirstAcquiredAt: time.Now().UTC()}
	}
	rec.Count++
	t.st.ownership[key] = rec
	return &rec, nil
}

func (t *Tx) GetMileageForUpdate(_ context.Context, playerID uuid.UUID) (*domain.MileageCounter, error) {
	m := mileageOf(t.st, playerID)
	t.st.mileage[playerID] = m
	return &m, nil
}

func (t *Tx) IncrementMileage(_ context.Context, playerID uuid.UUID, n int64) (int64, error) {
	m := mileageOf(t.st, playerID)
	m.Count += n
	t.st.mileage[playerID] = m
	return m.Count, nil
}

func (t *Tx) MarkMilestoneClaimed(_ context.Context, playerID uuid.UUID, milestone int64) error {
	m := mileageOf(t.st, playerID)
	if m.HasClaimed(milestone) {
		return domain.ErrNotEligible
	}
	m.ClaimedMilestones = append(m.ClaimedMilestones, milestone)
	t.st.mileage[playerID] = m
	return nil
}

func (t *Tx) RecordDraws(_ context.Context, records []domain.DrawRecord) error {
	t.st.draws = append(t.st.draws, records...)
	return nil
}

// ---- Lottery ----

func (t *Tx) GetBoardForUpdate(_ context.Context, boardID string) (*domain.LotteryBoard, error) {
	b, ok := t.st.boards[boardID]
	if !ok {
		return nil, nil
	}
	b.Cells = append([]domain.LotteryCell{}, b.Cells...)
	return &b, nil
}

func (t *Tx) CreateBoard(ctx context.Context, boardID string, topCell int) (*domain.LotteryBoard, error) {
	if _, ok := t.st.boards[boardID]; !ok {
		t.st.boards[boardID] = domain.LotteryBoard{
			ID:        boardID,
			TopCell:   topCell,
			Cells:     emptyCells(),
			UpdatedAt: time.Now().UTC(),
		}
	}
	return t.GetBoardForUpdate(ctx, boardID)
}

func (t *Tx) RevealCell(_ context.Context, boardID string, cell domain.LotteryCell) error {
	b, ok := t.st.boards[boardID]
	if !ok {
		return fmt.Errorf("board %q does not exist", boardID)
	}
	b.Cells = append([]domain.LotteryCell{}, b.Cells...)
	target := b.Cell(cell.Number)
	if target == nil {
		return domain.ErrInvalidCell
	}
	if target.Revealed {
		return domain.ErrAlreadyRevealed
	}
	cell.Revealed = true
	*target = cell
	b.Version++
	b.UpdatedAt = time.Now().UTC()
	t.st.boards[boardID] = b
	return nil
}

func (t *Tx) ResetBoard(_ context.Context, boardID string, topCell int) (*domain.LotteryBoard, error) {
	b, ok := t.st.boards[boardID]
	if !ok {
		return nil, fmt.Errorf("board %q does not exist", boardID)
	}
	b.TopCell = topCell
	b.ResetCount++
	b.Version++
	b.Cells = emptyCells()
	b.UpdatedAt = time.Now().UTC()
	t.st.boards[boardID] = b
	out := b
	out.Cells = emptyCells()
	return &out, nil
}

func (t *Tx) RecordPick(_ context.Context, pick domain.LotteryPick) error {
	t.st.picks = append(t.st.picks, pick)
	return nil
}

// ---- Raid ----

func (t *Tx) GetActiveRaidForUpdate(_ context.Context) (*domain.RaidBoss, error) {
	return activeRaid(t.st), nil
}

func (t *Tx) CreateRaid(_ context.Context, raid *domain.RaidBoss) error {
	if activeRaid(t.st) != nil {
		return domain.ErrRaidAlreadyActive
	}
	t.st.nextRaidID++
	raid.ID = t.st.nextRaidID
	raid.Active = true
	t.st.raids[raid.ID] = *raid
	return nil
}

func (t *Tx) UpdateRaidHP(_ context.Context, raidID, currentHP int64) error {
	r, ok := t.st.raids[raidID]
	if !ok {
		return domain.ErrNoActiveRaid
	}
	r.CurrentHP = currentHP
	t.st.raids[raidID] = r
	return nil
}

func (t *Tx) EndRaid(_ context.Context, raidID int64, endedAt time.Time) error {
	r, ok := t.st.raids[raidID]
	if !ok || !r.Active {
		return domain.ErrNoActiveRaid
	}
	r.Active = false
	r.EndedAt = &endedAt
	t.st.raids[raidID] = r
	return nil
}

func (t *Tx) GetContributionForUpdate(_ context.Context, raidID int64, playerID uuid.UUID) (*domain.RaidContribution, error) {
	c, ok := t.st.contributions[contributionKey{raidID, playerID}]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *Tx) SaveContribution(_ context.Context, c *domain.RaidContribution) error {
	saved := *c
	saved.AttemptDay = domain.UTCDay(c.AttemptDay)
	saved.UpdatedAt = time.Now().UTC()
	t.st.contributions[contributionKey{c.RaidID, c.PlayerID}] = saved
	return nil
}

func (t *Tx) ListContributions(_ context.Context, raidID int64) ([]domain.RaidContribution, error) {
	return contributionsOf(t.st, raidID), nil
}

func (t *Tx) ListOwnedTiers(_ context.Context, playerID uuid.UUID) ([]domain.Tier, error) {
	var tiers []domain.Tier
	for key := range t.st.ownership {
		if key.player == playerID {
			tiers = append(tiers, t.st.items[key.item].item.Tier)
		}
	}
	return tiers, nil
}

func (t *Tx) RecordRaidRewards(_ context.Context, rewards []domain.RaidReward) error {
	t.st.raidRewards = append(t.st.raidRewards, rewards...)
	return nil
}

func emptyCells() []domain.LotteryCell {
	cells := make([]domain.LotteryCell, domain.LotteryCellCount)
	for i := range cells {
		cells[i].Number = i + 1
	}
	return cells
}
