package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
)

func toPlayer(p generated.Player) *domain.Player {
	return &domain.Player{
		ID:        p.PlayerID,
		Username:  p.Username,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toItem(i generated.Item) domain.Item {
	return domain.Item{
		ID:           i.ItemID,
		InternalName: i.InternalName,
		DisplayName:  i.DisplayName,
		Tier:         domain.Tier(i.Tier),
		Season:       i.Season,
		Region:       i.Region,
	}
}

func toItems(rows []generated.Item) []domain.Item {
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItem(row))
	}
	return items
}

func toOwnership(o generated.OwnershipRecord) *domain.OwnershipRecord {
	return &domain.OwnershipRecord{
		PlayerID:        o.PlayerID,
		ItemID:          o.ItemID,
		Count:           o.AcquisitionCount,
		FirstAcquiredAt: o.FirstAcquiredAt,
	}
}

func toMileage(m generated.MileageCounter) *domain.MileageCounter {
	claimed := m.ClaimedMilestones
	if claimed == nil {
		claimed = []int64{}
	}
	return &domain.MileageCounter{
		PlayerID:          m.PlayerID,
		Count:             m.Mileage,
		ClaimedMilestones: claimed,
	}
}

// toBoard returns the board with all cells unrevealed.
func toBoard(b generated.LotteryBoard) *domain.LotteryBoard {
	board := &domain.LotteryBoard{
		ID:         b.BoardID,
		TopCell:    int(b.TopCell),
		ResetCount: b.ResetCount,
		Version:    b.Version,
		UpdatedAt:  b.UpdatedAt,
		Cells:      make([]domain.LotteryCell, domain.LotteryCellCount),
	}
	for i := range board.Cells {
		board.Cells[i].Number = i + 1
	}
	return board
}

// applyCell marks the stored cell revealed on board.
func applyCell(board *domain.LotteryBoard, c generated.LotteryCell) error {
	var reward domain.Reward
	if err := json.Unmarshal(c.Reward, &reward); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToParseReward, err)
	}
	cell := board.Cell(int(c.CellNumber))
	if cell == nil {
		return nil
	}
	revealedBy, revealedAt := c.RevealedBy, c.RevealedAt
	cell.Revealed = true
	cell.Grade = c.Grade
	cell.Reward = &reward
	cell.RevealedBy = &revealedBy
	cell.RevealedAt = &revealedAt
	return nil
}

func toRaid(r generated.RaidBoss) *domain.RaidBoss {
	raid := &domain.RaidBoss{
		ID:           r.RaidID,
		Name:         r.Name,
		MaxHP:        r.MaxHp,
		CurrentHP:    r.CurrentHp,
		RewardPool:   r.RewardPool,
		MultiplierBP: r.MultiplierBp,
		Active:       r.Active,
		StartedAt:    r.StartedAt,
	}
	if r.EndedAt.Valid {
		endedAt := r.EndedAt.Time
		raid.EndedAt = &endedAt
	}
	return raid
}

func toContribution(c generated.RaidContribution) domain.RaidContribution {
	return domain.RaidContribution{
		RaidID:        c.RaidID,
		PlayerID:      c.PlayerID,
		Damage:        c.Damage,
		Attempts:      int(c.Attempts),
		DailyAttempts: int(c.DailyAttempts),
		AttemptDay:    c.AttemptDay,
		UpdatedAt:     c.UpdatedAt,
	}
}

func nullableInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}
