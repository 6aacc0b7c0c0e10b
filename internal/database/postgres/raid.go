package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// RaidRepository implements repository.Raid for PostgreSQL using sqlc
type RaidRepository struct {
	db          *pgxpool.Pool
	q           *generated.Queries
	lockTimeout time.Duration
}

// NewRaidRepository creates a new RaidRepository
func NewRaidRepository(db *pgxpool.Pool, lockTimeout time.Duration) *RaidRepository {
	return &RaidRepository{db: db, q: generated.New(db), lockTimeout: lockTimeout}
}

// BeginRaidTx starts a raid transaction
func (r *RaidRepository) BeginRaidTx(ctx context.Context) (repository.RaidTx, error) {
	tx, err := beginTx(ctx, r.db, r.q, r.lockTimeout)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GetActiveRaid returns the active raid or nil
func (r *RaidRepository) GetActiveRaid(ctx context.Context) (*domain.RaidBoss, error) {
	row, err := r.q.GetActiveRaid(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgFailedToGetRaid, err)
	}
	return toRaid(row), nil
}

// GetRaidTotals sums damage and counts contributors with damage
func (r *RaidRepository) GetRaidTotals(ctx context.Context, raidID int64) (int64, int, error) {
	totals, err := r.q.GetRaidTotals(ctx, raidID)
	if err != nil {
		return 0, 0, wrap(ErrMsgFailedToGetRaidTotals, err)
	}
	return totals.TotalDamage, int(totals.Contributors), nil
}

// TopContributors ranks contributors by damage, earliest to reach it first
func (r *RaidRepository) TopContributors(ctx context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.q.ListTopContributors(ctx, generated.ListTopContributorsParams{RaidID: raidID, Limit: int32(limit)})
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetTopContributors, err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.LeaderboardEntry{Rank: i + 1, PlayerID: row.PlayerID, Damage: row.Damage})
	}
	return entries, nil
}

// GetRaidRewards lists the distribution recorded when the raid ended
func (r *RaidRepository) GetRaidRewards(ctx context.Context, raidID int64) ([]domain.RaidReward, error) {
	rows, err := r.q.ListRaidRewards(ctx, raidID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetRaidRewards, err)
	}
	rewards := make([]domain.RaidReward, 0, len(rows))
	for _, row := range rows {
		rewards = append(rewards, domain.RaidReward{
			RaidID:   row.RaidID,
			PlayerID: row.PlayerID,
			Damage:   row.Damage,
			Amount:   row.Amount,
			Floored:  row.Floored,
		})
	}
	return rewards, nil
}
