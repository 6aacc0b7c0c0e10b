package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Gacha defines the interface for data access required by the gacha service
type Gacha interface {
	BeginGachaTx(ctx context.Context) (GachaTx, error)

	HasClaimedFreeDraw(ctx context.Context, playerID uuid.UUID, packType string, day time.Time) (bool, error)
	GetCollection(ctx context.Context, playerID uuid.UUID) ([]domain.CollectionEntry, error)
	GetMileage(ctx context.Context, playerID uuid.UUID) (*domain.MileageCounter, error)
}

// GachaTx extends WalletTx with the ledger writes of a draw
type GachaTx interface {
	WalletTx

	// ClaimFreeDraw records today's free draw. Returns false if it was already used.
	ClaimFreeDraw(ctx context.Context, playerID uuid.UUID, packType string, day time.Time) (bool, error)

	// GetOwnership returns nil when the player has never acquired the item.
	GetOwnership(ctx context.Context, playerID uuid.UUID, itemID int64) (*domain.OwnershipRecord, error)
	// AddOwnership creates the record or increments its acquisition count.
	AddOwnership(ctx context.Context, playerID uuid.UUID, itemID int64) (*domain.OwnershipRecord, error)

	// GetMileageForUpdate locks (creating if needed) the player's mileage counter.
	GetMileageForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.MileageCounter, error)
	IncrementMileage(ctx context.Context, playerID uuid.UUID, n int64) (int64, error)
	MarkMilestoneClaimed(ctx context.Context, playerID uuid.UUID, milestone int64) error

	RecordDraws(ctx context.Context, records []domain.DrawRecord) error
}
