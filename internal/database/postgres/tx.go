package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// ledgerTx is the single transaction type behind every repository Tx interface.
// Row locks are taken in the order aggregate, wallet, mileage, ownership.
type ledgerTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// Commit commits the transaction
func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrap(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction. After Commit it reports pgx.ErrTxClosed,
// whose message is domain.ErrMsgTxClosed.
func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ---- Wallet ----

func (t *ledgerTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	row, err := t.q.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, wrap(ErrMsgFailedToLockPlayer, err)
	}
	return toPlayer(row), nil
}

func (t *ledgerTx) AdjustBalance(ctx context.Context, playerID uuid.UUID, delta int64) (int64, error) {
	balance, err := t.q.AdjustBalance(ctx, generated.AdjustBalanceParams{Delta: delta, PlayerID: playerID})
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrap(ErrMsgFailedToAdjustBalance, err)
	}
	exists, err := t.q.PlayerExists(ctx, playerID)
	if err != nil {
		return 0, wrap(ErrMsgFailedToAdjustBalance, err)
	}
	if !exists {
		return 0, domain.ErrPlayerNotFound
	}
	return 0, domain.ErrInsufficientFunds
}

// ---- Gacha ledger ----

func (t *ledgerTx) ClaimFreeDraw(ctx context.Context, playerID uuid.UUID, packType string, day time.Time) (bool, error) {
	n, err := t.q.ClaimFreeDraw(ctx, generated.ClaimFreeDrawParams{
		PlayerID: playerID,
		PackType: packType,
		ClaimDay: domain.UTCDay(day),
	})
	if err != nil {
		return false, wrap(ErrMsgFailedToClaimFreeDraw, err)
	}
	return n == 1, nil
}

func (t *ledgerTx) GetOwnership(ctx context.Context, playerID uuid.UUID, itemID int64) (*domain.OwnershipRecord, error) {
	row, err := t.q.GetOwnership(ctx, generated.GetOwnershipParams{PlayerID: playerID, ItemID: itemID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgFailedToGetOwnership, err)
	}
	return toOwnership(row), nil
}

func (t *ledgerTx) AddOwnership(ctx context.Context, playerID uuid.UUID, itemID int64) (*domain.OwnershipRecord, error) {
	row, err := t.q.AddOwnership(ctx, generated.AddOwnershipParams{PlayerID: playerID, ItemID: itemID})
	if err != nil {
		return nil, wrap(ErrMsgFailedToAddOwnership, err)
	}
	return toOwnership(row), nil
}

func (t *ledgerTx) GetMileageForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.MileageCounter, error) {
	if err := t.q.EnsureMileage(ctx, playerID); err != nil {
		return nil, wrap(ErrMsgFailedToLockMileage, err)
	}
	row, err := t.q.GetMileageForUpdate(ctx, playerID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToLockMileage, err)
	}
	return toMileage(row), nil
}

func (t *ledgerTx) IncrementMileage(ctx context.Context, playerID uuid.UUID, n int64) (int64, error) {
	mileage, err := t.q.IncrementMileage(ctx, generated.IncrementMileageParams{N: n, PlayerID: playerID})
	if err != nil {
		return 0, wrap(ErrMsgFailedToUpdateMileage, err)
	}
	return mileage, nil
}

func (t *ledgerTx) MarkMilestoneClaimed(ctx context.Context, playerID uuid.UUID, milestone int64) error {
	n, err := t.q.MarkMilestoneClaimed(ctx, generated.MarkMilestoneClaimedParams{Milestone: milestone, PlayerID: playerID})
	if err != nil {
		return wrap(ErrMsgFailedToClaimMilestone, err)
	}
	if n == 0 {
		return domain.ErrNotEligible
	}
	return nil
}

func (t *ledgerTx) RecordDraws(ctx context.Context, records []domain.DrawRecord) error {
	if len(records) == 0 {
		return nil
	}
	params := make([]generated.RecordDrawsParams, len(records))
	for i, r := range records {
		params[i] = generated.RecordDrawsParams{
			DrawID:      r.ID,
			PlayerID:    r.PlayerID,
			PackType:    r.PackType,
			Source:      r.Source,
			ItemID:      r.ItemID,
			Tier:        string(r.Tier),
			Roll:        r.Roll,
			IntervalLo:  r.Lo,
			IntervalHi:  r.Hi,
			IsDuplicate: r.IsDuplicate,
			Refund:      r.Refund,
			CreatedAt:   r.CreatedAt,
		}
	}
	if _, err := t.q.RecordDraws(ctx, params); err != nil {
		return wrap(ErrMsgFailedToRecordDraws, err)
	}
	return nil
}

// ---- Lottery ----

func (t *ledgerTx) GetBoardForUpdate(ctx context.Context, boardID string) (*domain.LotteryBoard, error) {
	return loadBoard(ctx, t.q, true, boardID)
}

func (t *ledgerTx) CreateBoard(ctx context.Context, boardID string, topCell int) (*domain.LotteryBoard, error) {
	if err := t.q.CreateBoard(ctx, generated.CreateBoardParams{BoardID: boardID, TopCell: int16(topCell)}); err != nil {
		return nil, wrap(ErrMsgFailedToCreateBoard, err)
	}
	return loadBoard(ctx, t.q, true, boardID)
}

func (t *ledgerTx) RevealCell(ctx context.Context, boardID string, cell domain.LotteryCell) error {
	reward, err := json.Marshal(cell.Reward)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalReward, err)
	}
	params := generated.RevealCellParams{
		BoardID:    boardID,
		CellNumber: int16(cell.Number),
		Grade:      cell.Grade,
		Reward:     reward,
		RevealedAt: time.Now().UTC(),
	}
	if cell.RevealedAt != nil {
		params.RevealedAt = *cell.RevealedAt
	}
	if cell.RevealedBy != nil {
		params.RevealedBy = *cell.RevealedBy
	}
	if err := t.q.RevealCell(ctx, params); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRevealed
		}
		return wrap(ErrMsgFailedToRevealCell, err)
	}
	if err := t.q.BumpBoardVersion(ctx, boardID); err != nil {
		return wrap(ErrMsgFailedToRevealCell, err)
	}
	return nil
}

func (t *ledgerTx) ResetBoard(ctx context.Context, boardID string, topCell int) (*domain.LotteryBoard, error) {
	if err := t.q.DeleteCells(ctx, boardID); err != nil {
		return nil, wrap(ErrMsgFailedToResetBoard, err)
	}
	row, err := t.q.ResetBoard(ctx, generated.ResetBoardParams{BoardID: boardID, TopCell: int16(topCell)})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: board %q does not exist", ErrMsgFailedToResetBoard, boardID)
		}
		return nil, wrap(ErrMsgFailedToResetBoard, err)
	}
	return toBoard(row), nil
}

func (t *ledgerTx) RecordPick(ctx context.Context, pick domain.LotteryPick) error {
	err := t.q.RecordPick(ctx, generated.RecordPickParams{
		PickID:         pick.ID,
		BoardID:        pick.BoardID,
		PlayerID:       pick.PlayerID,
		CellNumber:     int16(pick.Cell),
		Grade:          pick.Grade,
		RewardType:     pick.RewardType,
		Points:         pick.Points,
		ItemID:         nullableInt8(pick.ItemID),
		PackType:       pick.PackType,
		TriggeredReset: pick.TriggeredReset,
		CreatedAt:      pick.CreatedAt,
	})
	if err != nil {
		return wrap(ErrMsgFailedToRecordPick, err)
	}
	return nil
}

// ---- Raid ----

func (t *ledgerTx) GetActiveRaidForUpdate(ctx context.Context) (*domain.RaidBoss, error) {
	row, err := t.q.GetActiveRaidForUpdate(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgFailedToGetRaid, err)
	}
	return toRaid(row), nil
}

func (t *ledgerTx) CreateRaid(ctx context.Context, raid *domain.RaidBoss) error {
	id, err := t.q.CreateRaid(ctx, generated.CreateRaidParams{
		Name:         raid.Name,
		MaxHp:        raid.MaxHP,
		CurrentHp:    raid.CurrentHP,
		RewardPool:   raid.RewardPool,
		MultiplierBp: raid.MultiplierBP,
		StartedAt:    raid.StartedAt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRaidAlreadyActive
		}
		return wrap(ErrMsgFailedToCreateRaid, err)
	}
	raid.ID = id
	raid.Active = true
	return nil
}

func (t *ledgerTx) UpdateRaidHP(ctx context.Context, raidID, currentHP int64) error {
	if err := t.q.UpdateRaidHP(ctx, generated.UpdateRaidHPParams{RaidID: raidID, CurrentHp: currentHP}); err != nil {
		return wrap(ErrMsgFailedToUpdateRaid, err)
	}
	return nil
}

func (t *ledgerTx) EndRaid(ctx context.Context, raidID int64, endedAt time.Time) error {
	n, err := t.q.EndRaid(ctx, generated.EndRaidParams{
		RaidID:  raidID,
		EndedAt: pgtype.Timestamptz{Time: endedAt, Valid: true},
	})
	if err != nil {
		return wrap(ErrMsgFailedToEndRaid, err)
	}
	if n == 0 {
		return domain.ErrNoActiveRaid
	}
	return nil
}

func (t *ledgerTx) GetContributionForUpdate(ctx context.Context, raidID int64, playerID uuid.UUID) (*domain.RaidContribution, error) {
	row, err := t.q.GetContributionForUpdate(ctx, generated.GetContributionForUpdateParams{RaidID: raidID, PlayerID: playerID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgFailedToGetContribution, err)
	}
	c := toContribution(row)
	return &c, nil
}

func (t *ledgerTx) SaveContribution(ctx context.Context, c *domain.RaidContribution) error {
	err := t.q.UpsertContribution(ctx, generated.UpsertContributionParams{
		RaidID:        c.RaidID,
		PlayerID:      c.PlayerID,
		Damage:        c.Damage,
		Attempts:      int32(c.Attempts),
		DailyAttempts: int32(c.DailyAttempts),
		AttemptDay:    domain.UTCDay(c.AttemptDay),
	})
	if err != nil {
		return wrap(ErrMsgFailedToSaveContribution, err)
	}
	return nil
}

func (t *ledgerTx) ListContributions(ctx context.Context, raidID int64) ([]domain.RaidContribution, error) {
	rows, err := t.q.ListContributions(ctx, raidID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListContributions, err)
	}
	out := make([]domain.RaidContribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, toContribution(row))
	}
	return out, nil
}

func (t *ledgerTx) ListOwnedTiers(ctx context.Context, playerID uuid.UUID) ([]domain.Tier, error) {
	rows, err := t.q.ListOwnedTiers(ctx, playerID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListOwnedTiers, err)
	}
	tiers := make([]domain.Tier, 0, len(rows))
	for _, tier := range rows {
		tiers = append(tiers, domain.Tier(tier))
	}
	return tiers, nil
}

func (t *ledgerTx) RecordRaidRewards(ctx context.Context, rewards []domain.RaidReward) error {
	if len(rewards) == 0 {
		return nil
	}
	params := make([]generated.RecordRaidRewardsParams, len(rewards))
	for i, r := range rewards {
		params[i] = generated.RecordRaidRewardsParams{
			RaidID:   r.RaidID,
			PlayerID: r.PlayerID,
			Damage:   r.Damage,
			Amount:   r.Amount,
			Floored:  r.Floored,
		}
	}
	if _, err := t.q.RecordRaidRewards(ctx, params); err != nil {
		return wrap(ErrMsgFailedToRecordRaidRewards, err)
	}
	return nil
}
