package repository

import (
	"context"
	"time"
)

// Maintenance covers scheduled housekeeping of time-windowed counters
type Maintenance interface {
	// ResetDailyRaidAttempts zeroes attempt counters recorded before day.
	ResetDailyRaidAttempts(ctx context.Context, day time.Time) (int64, error)
	// PruneFreeDrawClaims deletes free-draw claims older than before.
	PruneFreeDrawClaims(ctx context.Context, before time.Time) (int64, error)
}
