package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// WalletTx locks and mutates a player's balance inside a transaction.
// Aggregates (board, raid) must be locked before the wallet.
type WalletTx interface {
	Tx

	// GetPlayerForUpdate locks the player row. Returns domain.ErrPlayerNotFound.
	GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	// AdjustBalance applies delta and returns the new balance.
	// Returns domain.ErrInsufficientFunds if the balance would go negative.
	AdjustBalance(ctx context.Context, playerID uuid.UUID, delta int64) (int64, error)
}
