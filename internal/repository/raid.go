package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Raid defines the interface for raid persistence
type Raid interface {
	BeginRaidTx(ctx context.Context) (RaidTx, error)

	// GetActiveRaid returns nil when no raid is active.
	GetActiveRaid(ctx context.Context) (*domain.RaidBoss, error)
	GetRaidTotals(ctx context.Context, raidID int64) (totalDamage int64, contributors int, err error)
	TopContributors(ctx context.Context, raidID int64, limit int) ([]domain.LeaderboardEntry, error)
	GetRaidRewards(ctx context.Context, raidID int64) ([]domain.RaidReward, error)
}

// RaidTx extends WalletTx with raid state mutations
type RaidTx interface {
	WalletTx

	// GetActiveRaidForUpdate locks the active raid row; nil when none.
	GetActiveRaidForUpdate(ctx context.Context) (*domain.RaidBoss, error)
	// CreateRaid inserts an active raid. Returns domain.ErrRaidAlreadyActive on conflict.
	CreateRaid(ctx context.Context, raid *domain.RaidBoss) error
	UpdateRaidHP(ctx context.Context, raidID, currentHP int64) error
	EndRaid(ctx context.Context, raidID int64, endedAt time.Time) error

	// GetContributionForUpdate locks the contribution row; nil when none.
	GetContributionForUpdate(ctx context.Context, raidID int64, playerID uuid.UUID) (*domain.RaidContribution, error)
	SaveContribution(ctx context.Context, c *domain.RaidContribution) error
	ListContributions(ctx context.Context, raidID int64) ([]domain.RaidContribution, error)

	// ListOwnedTiers returns the tier of every distinct item the player owns.
	ListOwnedTiers(ctx context.Context, playerID uuid.UUID) ([]domain.Tier, error)
	RecordRaidRewards(ctx context.Context, rewards []domain.RaidReward) error
}
