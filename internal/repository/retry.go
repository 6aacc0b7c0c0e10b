package repository

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/logger"
)

// RetryPolicy bounds how often a contended transaction is re-run.
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	// OnRetry is called before each retry. Optional.
	OnRetry func(op string, attempt int, err error)
}

// DefaultRetryPolicy is three attempts starting at 20ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseBackoff: 20 * time.Millisecond}
}

// WithRetry runs fn, re-running it when it fails with domain.ErrContention.
// Each attempt must be a complete transaction so a retry starts from fresh state.
func WithRetry[T any](ctx context.Context, policy RetryPolicy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var zero T
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var result T
		result, err = fn(ctx)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, domain.ErrContention) || attempt == attempts {
			return zero, err
		}

		if policy.OnRetry != nil {
			policy.OnRetry(op, attempt, err)
		}
		logger.FromContext(ctx).Debug("Retrying contended transaction", "op", op, "attempt", attempt, "error", err)

		backoff := policy.BaseBackoff << (attempt - 1)
		if backoff > 0 {
			backoff += time.Duration(rand.Int64N(int64(backoff)))
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return zero, err
}
