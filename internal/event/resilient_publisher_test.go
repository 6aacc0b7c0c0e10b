package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, 3, time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewRaidStartedEvent(1, "Golem")))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetrySucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt < 3 }}

	rp, err := NewResilientPublisher(bus, 5, time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewRaidStartedEvent(1, "Golem")))
	require.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ExhaustedGoesToDeadLetter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 2, time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewRaidStartedEvent(7, "Hydra")))
	require.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, RaidStarted, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &mockBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, time.Hour, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewRaidStartedEvent(2, "Wyrm")))
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, bus.CallCount())
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(2*time.Second, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(2*time.Second, 5))
}
