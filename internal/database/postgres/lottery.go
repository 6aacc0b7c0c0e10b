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

// LotteryRepository implements repository.Lottery for PostgreSQL using sqlc
type LotteryRepository struct {
	db          *pgxpool.Pool
	q           *generated.Queries
	lockTimeout time.Duration
}

// NewLotteryRepository creates a new LotteryRepository
func NewLotteryRepository(db *pgxpool.Pool, lockTimeout time.Duration) *LotteryRepository {
	return &LotteryRepository{db: db, q: generated.New(db), lockTimeout: lockTimeout}
}

// BeginLotteryTx starts a pick transaction
func (r *LotteryRepository) BeginLotteryTx(ctx context.Context) (repository.LotteryTx, error) {
	tx, err := beginTx(ctx, r.db, r.q, r.lockTimeout)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GetBoard reads a board without locking it
func (r *LotteryRepository) GetBoard(ctx context.Context, boardID string) (*domain.LotteryBoard, error) {
	return loadBoard(ctx, r.q, false, boardID)
}

// loadBoard reads the board row, optionally locking it, and fills all 49 cells.
// Returns nil when the board does not exist.
func loadBoard(ctx context.Context, q *generated.Queries, forUpdate bool, boardID string) (*domain.LotteryBoard, error) {
	read := q.GetBoard
	if forUpdate {
		read = q.GetBoardForUpdate
	}
	row, err := read(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgFailedToGetBoard, err)
	}

	board := toBoard(row)
	cells, err := q.ListRevealedCells(ctx, boardID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetCells, err)
	}
	for _, c := range cells {
		if err := applyCell(board, c); err != nil {
			return nil, err
		}
	}
	return board, nil
}
