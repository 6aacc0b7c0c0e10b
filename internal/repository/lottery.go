package repository

import (
	"context"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// Lottery defines the interface for board persistence
type Lottery interface {
	BeginLotteryTx(ctx context.Context) (LotteryTx, error)
	// GetBoard returns nil when the board has not been created yet.
	GetBoard(ctx context.Context, boardID string) (*domain.LotteryBoard, error)
}

// LotteryTx extends GachaTx so pack and item rewards land in the same transaction
type LotteryTx interface {
	GachaTx

	// GetBoardForUpdate locks the board row; nil when it does not exist.
	GetBoardForUpdate(ctx context.Context, boardID string) (*domain.LotteryBoard, error)
	// CreateBoard inserts a fresh board. Concurrent creators race on the primary key;
	// the loser must re-read with GetBoardForUpdate.
	CreateBoard(ctx context.Context, boardID string, topCell int) (*domain.LotteryBoard, error)
	// RevealCell marks a cell revealed. Returns domain.ErrAlreadyRevealed if it already was.
	RevealCell(ctx context.Context, boardID string, cell domain.LotteryCell) error
	// ResetBoard clears every cell and moves the top cell.
	ResetBoard(ctx context.Context, boardID string, topCell int) (*domain.LotteryBoard, error)
	RecordPick(ctx context.Context, pick domain.LotteryPick) error
}
