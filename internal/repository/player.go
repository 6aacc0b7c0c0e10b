package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Player defines the interface for wallet persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	GetMileage(ctx context.Context, playerID uuid.UUID) (*domain.MileageCounter, error)

	BeginWalletTx(ctx context.Context) (WalletTx, error)
}
