package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/repository"
)

// GachaRepository implements repository.Gacha for PostgreSQL using sqlc
type GachaRepository struct {
	db          *pgxpool.Pool
	q           *generated.Queries
	lockTimeout time.Duration
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *pgxpool.Pool, lockTimeout time.Duration) *GachaRepository {
	return &GachaRepository{db: db, q: generated.New(db), lockTimeout: lockTimeout}
}

// BeginGachaTx starts a draw transaction
func (r *GachaRepository) BeginGachaTx(ctx context.Context) (repository.GachaTx, error) {
	tx, err := beginTx(ctx, r.db, r.q, r.lockTimeout)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// HasClaimedFreeDraw reports whether the player used the pack's free draw on day
func (r *GachaRepository) HasClaimedFreeDraw(ctx context.Context, playerID uuid.UUID, packType string, day time.Time) (bool, error) {
	claimed, err := r.q.FreeDrawClaimed(ctx, generated.FreeDrawClaimedParams{
		PlayerID: playerID,
		PackType: packType,
		ClaimDay: domain.UTCDay(day),
	})
	if err != nil {
		return false, wrap(ErrMsgFailedToCheckFreeDraw, err)
	}
	return claimed, nil
}

// GetCollection lists every item the player owns, oldest acquisition first
func (r *GachaRepository) GetCollection(ctx context.Context, playerID uuid.UUID) ([]domain.CollectionEntry, error) {
	rows, err := r.q.ListCollection(ctx, playerID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetCollection, err)
	}
	entries := make([]domain.CollectionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.CollectionEntry{
			Item: domain.Item{
				ID:           row.ItemID,
				InternalName: row.InternalName,
				DisplayName:  row.DisplayName,
				Tier:         domain.Tier(row.Tier),
				Season:       row.Season,
				Region:       row.Region,
			},
			Count:           row.AcquisitionCount,
			FirstAcquiredAt: row.FirstAcquiredAt,
		})
	}
	return entries, nil
}

// GetMileage returns the player's counter, zero-valued when none exists yet
func (r *GachaRepository) GetMileage(ctx context.Context, playerID uuid.UUID) (*domain.MileageCounter, error) {
	return getMileage(ctx, r.q, playerID)
}
