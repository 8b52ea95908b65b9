package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptTracker_RegisterUpToLimit(t *testing.T) {
	tracker := memory.NewAttemptTracker()
	ctx := t.Context()

	attempt, failed, err := tracker.Register(ctx, "RETRY123", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt)
	assert.True(t, failed)

	attempt, failed, err = tracker.Register(ctx, "RETRY123", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, attempt)
	assert.True(t, failed)

	attempt, failed, err = tracker.Register(ctx, "RETRY123", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, attempt)
	assert.False(t, failed)
	assert.Equal(t, 2, tracker.Attempts("RETRY123"))
}

func TestAttemptTracker_ZeroLimitNeverFails(t *testing.T) {
	tracker := memory.NewAttemptTracker()

	attempt, failed, err := tracker.Register(t.Context(), "RETRY123", 0)
	require.NoError(t, err)
	assert.Zero(t, attempt)
	assert.False(t, failed)
}

func TestAttemptTracker_Clear(t *testing.T) {
	tracker := memory.NewAttemptTracker()
	ctx := t.Context()

	_, _, err := tracker.Register(ctx, "RETRY123", 2)
	require.NoError(t, err)
	require.NoError(t, tracker.Clear(ctx, "RETRY123"))
	require.NoError(t, tracker.Clear(ctx, "RETRY123"))

	assert.Zero(t, tracker.Len())
	assert.Zero(t, tracker.Attempts("RETRY123"))

	attempt, failed, err := tracker.Register(ctx, "RETRY123", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt)
	assert.True(t, failed)
}

func TestAttemptTracker_CancelledContext(t *testing.T) {
	tracker := memory.NewAttemptTracker()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, _, err := tracker.Register(ctx, "RETRY123", 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, tracker.Len())
}

func TestAttemptTracker_ConcurrentRegisterHasNoLostUpdates(t *testing.T) {
	const (
		workers = 32
		perWork = 50
		limit   = workers * perWork
	)

	tracker := memory.NewAttemptTracker()
	ctx := t.Context()

	var (
		mu   sync.Mutex
		seen = make(map[int]int)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWork {
				attempt, failed, err := tracker.Register(ctx, "RETRY123", limit)
				if err != nil || !failed {
					continue
				}
				mu.Lock()
				seen[attempt]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, limit)
	for value, count := range seen {
		assert.Equal(t, 1, count, "counter value %d observed more than once", value)
	}
	assert.Equal(t, limit, tracker.Attempts("RETRY123"))
}

func TestAttemptTracker_DifferentIDsAreIndependent(t *testing.T) {
	tracker := memory.NewAttemptTracker()
	ctx := t.Context()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := order.ID(fmt.Sprintf("ID%05d", i))
			for range 3 {
				_, _, _ = tracker.Register(ctx, id, 2)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, tracker.Len())
	assert.Equal(t, 2, tracker.Attempts("ID00007"))
}

func TestAttemptTracker_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	tracker := memory.NewAttemptTrackerWithClock(clock)
	ctx := t.Context()

	_, _, err := tracker.Register(ctx, "OLD01", 2)
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	_, _, err = tracker.Register(ctx, "NEW01", 2)
	require.NoError(t, err)

	removed := tracker.Sweep(5 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Zero(t, tracker.Attempts("OLD01"))
	assert.Equal(t, 1, tracker.Attempts("NEW01"))
}
