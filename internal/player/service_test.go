package player

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/testing/memstore"
)

func newTestService() (*memstore.Store, Service) {
	store := memstore.New()
	return store, NewService(store, repository.RetryPolicy{MaxAttempts: 3})
}

func TestRegister(t *testing.T) {
	store, svc := newTestService()

	p, err := svc.Register(context.Background(), "  alice ", 250)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, int64(250), store.Balance(p.ID))

	_, err = svc.Register(context.Background(), "alice", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "usernames are unique")
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		balance  int64
	}{
		{"blank username", "   ", 0},
		{"username too long", strings.Repeat("x", MaxUsernameLength+1), 0},
		{"negative balance", "bob", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newTestService()
			_, err := svc.Register(context.Background(), tt.username, tt.balance)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGet(t *testing.T) {
	store, svc := newTestService()
	id := store.SeedPlayer("alice", 40)
	store.SeedMileage(id, 12)

	summary, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(40), summary.Balance)
	assert.Equal(t, int64(12), summary.Mileage)
	assert.NotNil(t, summary.ClaimedMilestones)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGrant(t *testing.T) {
	store, svc := newTestService()
	id := store.SeedPlayer("alice", 100)

	balance, err := svc.Grant(context.Background(), id, 900)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	balance, err = svc.Grant(context.Background(), id, -400)
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)

	_, err = svc.Grant(context.Background(), id, -601)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(600), store.Balance(id))

	_, err = svc.Grant(context.Background(), id, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Grant(context.Background(), uuid.New(), 10)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGrant_RetriesContention(t *testing.T) {
	store, svc := newTestService()
	id := store.SeedPlayer("alice", 0)
	store.FailCommits(domain.ErrContention)

	balance, err := svc.Grant(context.Background(), id, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance)
}
