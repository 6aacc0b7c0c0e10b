package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// PlayerRepository implements repository.Player for PostgreSQL using sqlc
type PlayerRepository struct {
	db          *pgxpool.Pool
	q           *generated.Queries
	lockTimeout time.Duration
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool, lockTimeout time.Duration) *PlayerRepository {
	return &PlayerRepository{db: db, q: generated.New(db), lockTimeout: lockTimeout}
}

// CreatePlayer inserts a player with its opening balance
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	row, err := r.q.CreatePlayer(ctx, generated.CreatePlayerParams{
		PlayerID: player.ID,
		Username: player.Username,
		Balance:  player.Balance,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: "+ErrMsgUsernameTaken, domain.ErrInvalidInput, player.Username)
		}
		return wrap(ErrMsgFailedToInsertPlayer, err)
	}
	player.CreatedAt = row.CreatedAt
	player.UpdatedAt = row.UpdatedAt
	return nil
}

// GetPlayer retrieves a player by id
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	row, err := r.q.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, wrap(ErrMsgFailedToGetPlayer, err)
	}
	return toPlayer(row), nil
}

// GetMileage returns the player's counter, zero-valued when none exists yet
func (r *PlayerRepository) GetMileage(ctx context.Context, playerID uuid.UUID) (*domain.MileageCounter, error) {
	return getMileage(ctx, r.q, playerID)
}

// BeginWalletTx starts a transaction scoped to wallet mutations
func (r *PlayerRepository) BeginWalletTx(ctx context.Context) (repository.WalletTx, error) {
	tx, err := beginTx(ctx, r.db, r.q, r.lockTimeout)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func getMileage(ctx context.Context, q *generated.Queries, playerID uuid.UUID) (*domain.MileageCounter, error) {
	row, err := q.GetMileage(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.MileageCounter{PlayerID: playerID, ClaimedMilestones: []int64{}}, nil
		}
		return nil, wrap(ErrMsgFailedToGetMileage, err)
	}
	return toMileage(row), nil
}
