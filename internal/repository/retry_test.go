package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

func TestWithRetry(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseBackoff: time.Millisecond}

	t.Run("succeeds after contention", func(t *testing.T) {
		calls := 0
		var retried []int
		p := policy
		p.OnRetry = func(op string, attempt int, err error) {
			assert.Equal(t, "draw", op)
			retried = append(retried, attempt)
		}

		got, err := WithRetry(context.Background(), p, "draw", func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, fmt.Errorf("%w: lock timeout", domain.ErrContention)
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{1, 2}, retried)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		_, err := WithRetry(context.Background(), policy, "pick", func(ctx context.Context) (int, error) {
			calls++
			return 0, domain.ErrContention
		})

		assert.ErrorIs(t, err, domain.ErrContention)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		_, err := WithRetry(context.Background(), policy, "pick", func(ctx context.Context) (int, error) {
			calls++
			return 0, domain.ErrAlreadyRevealed
		})

		assert.ErrorIs(t, err, domain.ErrAlreadyRevealed)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		slow := RetryPolicy{MaxAttempts: 5, BaseBackoff: time.Hour}

		_, err := WithRetry(ctx, slow, "attack", func(ctx context.Context) (int, error) {
			cancel()
			return 0, domain.ErrContention
		})

		assert.True(t, errors.Is(err, context.Canceled))
	})
}
