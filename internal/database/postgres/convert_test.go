package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
)

func TestToRaid_EndedAt(t *testing.T) {
	t.Parallel()
	ended := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endedAt pgtype.Timestamptz
		want    *time.Time
	}{
		{"active raid has no end", pgtype.Timestamptz{}, nil},
		{"ended raid", pgtype.Timestamptz{Time: ended, Valid: true}, &ended},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raid := toRaid(generated.RaidBoss{
				RaidID:       7,
				MaxHp:        100,
				CurrentHp:    40,
				RewardPool:   1000,
				MultiplierBp: 15000,
				EndedAt:      tt.endedAt,
			})
			assert.Equal(t, int64(7), raid.ID)
			assert.Equal(t, int64(100), raid.MaxHP)
			assert.Equal(t, int64(40), raid.CurrentHP)
			assert.Equal(t, int64(15000), raid.MultiplierBP)
			assert.Equal(t, tt.want, raid.EndedAt)
		})
	}
}

func TestToMileage_NilMilestonesBecomeEmpty(t *testing.T) {
	t.Parallel()
	m := toMileage(generated.MileageCounter{PlayerID: uuid.New(), Mileage: 30})
	assert.Equal(t, int64(30), m.Count)
	assert.NotNil(t, m.ClaimedMilestones)
	assert.Empty(t, m.ClaimedMilestones)
}

func TestToBoard_AppliesRevealedCells(t *testing.T) {
	t.Parallel()
	board := toBoard(generated.LotteryBoard{BoardID: "main", TopCell: 17, Version: 3})
	require.Len(t, board.Cells, domain.LotteryCellCount)
	assert.Equal(t, 17, board.TopCell)
	assert.Equal(t, 1, board.Cells[0].Number)
	assert.Equal(t, domain.LotteryCellCount, board.Cells[domain.LotteryCellCount-1].Number)

	reward, err := json.Marshal(domain.Reward{Type: domain.RewardTypePoints, Points: 50})
	require.NoError(t, err)
	player := uuid.New()

	require.NoError(t, applyCell(board, generated.LotteryCell{
		CellNumber: 5, Grade: "B", Reward: reward, RevealedBy: player,
	}))
	cell := board.Cell(5)
	require.NotNil(t, cell)
	assert.True(t, cell.Revealed)
	assert.Equal(t, "B", cell.Grade)
	assert.Equal(t, int64(50), cell.Reward.Points)
	assert.Equal(t, player, *cell.RevealedBy)
	assert.False(t, board.Cell(6).Revealed)

	err = applyCell(board, generated.LotteryCell{CellNumber: 6, Reward: []byte("{")})
	assert.ErrorContains(t, err, ErrMsgFailedToParseReward)
}

func TestNullableInt8(t *testing.T) {
	t.Parallel()
	id := int64(42)

	tests := []struct {
		name string
		in   *int64
		want pgtype.Int8
	}{
		{"points reward has no item", nil, pgtype.Int8{}},
		{"item reward", &id, pgtype.Int8{Int64: 42, Valid: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nullableInt8(tt.in))
		})
	}
}
