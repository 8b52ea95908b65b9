package memory

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/order"

	cmap "github.com/orcaman/concurrent-map"
)

type retryEntry struct {
	attempts  int
	touchedAt time.Time
}

// AttemptTracker counts simulated lookup failures per order id.
//
// Counters live in a sharded map; Register runs under the lock of the id's shard only,
// so concurrent resolutions of one id are serialised. Different ids contend only when they
// hash to the same shard, and then only for the in-memory update, never across I/O.
type AttemptTracker struct {
	entries cmap.ConcurrentMap
	now     func() time.Time
}

// NewAttemptTracker creates an empty tracker.
func NewAttemptTracker() *AttemptTracker {
	return &AttemptTracker{
		entries: cmap.New(),
		now:     time.Now,
	}
}

// NewAttemptTrackerWithClock creates an empty tracker that reads time from now.
func NewAttemptTrackerWithClock(now func() time.Time) *AttemptTracker {
	t := NewAttemptTracker()
	t.now = now
	return t
}

// Register increments the counter of id when it is below limit.
func (t *AttemptTracker) Register(ctx context.Context, id order.ID, limit int) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	var failed bool
	res := t.entries.Upsert(string(id), nil, func(exists bool, inMap interface{}, _ interface{}) interface{} {
		var entry retryEntry
		if exists {
			entry = inMap.(retryEntry)
		}
		if entry.attempts < limit {
			entry.attempts++
			failed = true
		}
		entry.touchedAt = t.now()
		return entry
	})

	return res.(retryEntry).attempts, failed, nil
}

// Clear drops the counter of id.
func (t *AttemptTracker) Clear(_ context.Context, id order.ID) error {
	t.entries.Remove(string(id))
	return nil
}

// Attempts returns the current counter of id, zero when absent.
func (t *AttemptTracker) Attempts(id order.ID) int {
	v, ok := t.entries.Get(string(id))
	if !ok {
		return 0
	}
	return v.(retryEntry).attempts
}

// Len returns the number of live counters.
func (t *AttemptTracker) Len() int {
	return t.entries.Count()
}

// Sweep evicts counters not touched for longer than olderThan and returns how many were removed.
// Such counters belong to resolutions that never reached a terminal state.
func (t *AttemptTracker) Sweep(olderThan time.Duration) int {
	cutoff := t.now().Add(-olderThan)

	removed := 0
	for _, key := range t.entries.Keys() {
		if t.entries.RemoveCb(key, func(_ string, v interface{}, exists bool) bool {
			return exists && v.(retryEntry).touchedAt.Before(cutoff)
		}) {
			removed++
		}
	}

	return removed
}
