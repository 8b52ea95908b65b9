// Package redistracker stores lookup retry state in Redis so that several orderdesk
// instances share one attempt counter per order id.
//
// The read-check-increment of Register runs as a single Lua script, which Redis executes
// atomically. Every write refreshes a TTL, so counters of abandoned resolutions expire
// without a sweeper.
package redistracker

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds the lifetime of an idle counter.
const DefaultTTL = time.Minute

const defaultKeyPrefix = "orderdesk:retry:"

var registerScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local limit = tonumber(ARGV[1])
if current < limit then
	current = redis.call('INCR', KEYS[1])
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
	return {current, 1}
end
if current > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return {current, 0}
`)

// client is the subset of go-redis clients the tracker needs.
type client interface {
	redis.Scripter
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AttemptTracker implements ports.AttemptTracker on Redis.
type AttemptTracker struct {
	client    client
	ttl       time.Duration
	keyPrefix string
}

// NewAttemptTracker creates a tracker. A non-positive ttl selects DefaultTTL.
func NewAttemptTracker(c client, ttl time.Duration) *AttemptTracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AttemptTracker{
		client:    c,
		ttl:       ttl,
		keyPrefix: defaultKeyPrefix,
	}
}

// Register increments the counter of id when it is below limit.
func (t *AttemptTracker) Register(ctx context.Context, id order.ID, limit int) (int, bool, error) {
	res, err := registerScript.Run(ctx, t.client, []string{t.key(id)}, limit, t.ttl.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, false, fmt.Errorf("register retry attempt for %s: %w", id, err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("register retry attempt for %s: unexpected reply %v", id, res)
	}

	return int(res[0]), res[1] == 1, nil
}

// Clear deletes the counter of id.
func (t *AttemptTracker) Clear(ctx context.Context, id order.ID) error {
	if err := t.client.Del(ctx, t.key(id)).Err(); err != nil {
		return fmt.Errorf("clear retry state for %s: %w", id, err)
	}
	return nil
}

func (t *AttemptTracker) key(id order.ID) string {
	return t.keyPrefix + id.String()
}
