package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/testing/leaktest"
)

// MockMaintenance for testing
type MockMaintenance struct {
	mock.Mock
}

func (m *MockMaintenance) ResetDailyRaidAttempts(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaintenance) PruneFreeDrawClaims(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func captureMaintenance(bus *event.MemoryBus) *[]event.MaintenancePayloadV1 {
	var got []event.MaintenancePayloadV1
	bus.Subscribe(event.MaintenanceRan, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.MaintenancePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		got = append(got, p)
		return nil
	})
	return &got
}

func TestMaintenanceWorker_RunOnce(t *testing.T) {
	repo := new(MockMaintenance)
	bus := event.NewMemoryBus()
	events := captureMaintenance(bus)

	w, err := NewMaintenanceWorker(repo, bus, "0 0 * * *", 30)
	require.NoError(t, err)
	// 23:30 at UTC-5 is already the 16th in UTC.
	w.now = func() time.Time { return time.Date(2025, 3, 15, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)) }

	today := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	repo.On("ResetDailyRaidAttempts", mock.Anything, today).Return(int64(12), nil)
	repo.On("PruneFreeDrawClaims", mock.Anything, today.AddDate(0, 0, -30)).Return(int64(40), nil)

	res, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, MaintenanceResult{AttemptsReset: 12, ClaimsPruned: 40}, res)
	require.Len(t, *events, 1)
	assert.Empty(t, (*events)[0].Error)
	assert.Equal(t, int64(40), (*events)[0].ClaimsPruned)
	repo.AssertExpectations(t)
}

func TestMaintenanceWorker_RunOnceContinuesAfterFailure(t *testing.T) {
	repo := new(MockMaintenance)
	bus := event.NewMemoryBus()
	events := captureMaintenance(bus)

	w, err := NewMaintenanceWorker(repo, bus, "@daily", 7)
	require.NoError(t, err)

	repo.On("ResetDailyRaidAttempts", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection refused"))
	repo.On("PruneFreeDrawClaims", mock.Anything, mock.Anything).Return(int64(3), nil)

	res, err := w.RunOnce(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextResetAttempt)
	assert.Equal(t, int64(3), res.ClaimsPruned, "prune still runs")
	require.Len(t, *events, 1)
	assert.NotEmpty(t, (*events)[0].Error)
	repo.AssertExpectations(t)
}

func TestNewMaintenanceWorker_Validation(t *testing.T) {
	tests := []struct {
		name      string
		schedule  string
		retention int
	}{
		{"bad schedule", "every day at noon", 30},
		{"too many fields", "0 0 0 * * *", 30},
		{"zero retention", "0 0 * * *", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMaintenanceWorker(new(MockMaintenance), nil, tt.schedule, tt.retention)
			assert.Error(t, err)
		})
	}
}

func TestMaintenanceWorker_StartAndShutdown(t *testing.T) {
	leaktest.VerifyNone(t)

	w, err := NewMaintenanceWorker(new(MockMaintenance), nil, "0 0 * * *", 30)
	require.NoError(t, err)

	w.Start()
	entries := w.cron.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, time.UTC, entries[0].Next.Location())
	assert.Equal(t, 0, entries[0].Next.Hour())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
}
