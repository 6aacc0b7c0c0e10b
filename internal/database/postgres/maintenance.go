package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RewardEngine_Go/internal/database/generated"
	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// MaintenanceRepository implements repository.Maintenance for PostgreSQL using sqlc
type MaintenanceRepository struct {
	q *generated.Queries
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{q: generated.New(db)}
}

// ResetDailyRaidAttempts zeroes attempt counters recorded before day
func (r *MaintenanceRepository) ResetDailyRaidAttempts(ctx context.Context, day time.Time) (int64, error) {
	n, err := r.q.ResetDailyAttempts(ctx, domain.UTCDay(day))
	if err != nil {
		return 0, wrap(ErrMsgFailedToResetDailyAttempts, err)
	}
	return n, nil
}

// PruneFreeDrawClaims deletes free-draw claims older than before
func (r *MaintenanceRepository) PruneFreeDrawClaims(ctx context.Context, before time.Time) (int64, error) {
	n, err := r.q.PruneFreeDrawClaims(ctx, domain.UTCDay(before))
	if err != nil {
		return 0, wrap(ErrMsgFailedToPruneFreeDrawClaims, err)
	}
	return n, nil
}
