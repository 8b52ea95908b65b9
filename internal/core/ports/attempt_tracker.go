package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// AttemptTracker keeps the per-order-id count of consecutive simulated lookup failures.
//
// It is the only state shared between concurrent resolutions, so implementations must
// make Register atomic per id and must not serialise different ids.
type AttemptTracker interface {
	// Register performs one atomic read-check-increment for id.
	// When the counter is below limit it is incremented and failed is true;
	// otherwise the counter is left alone and failed is false.
	// attempt is the counter value after the call.
	Register(ctx context.Context, id order.ID, limit int) (attempt int, failed bool, err error)

	// Clear removes the counter for id. Clearing an absent id is not an error.
	Clear(ctx context.Context, id order.ID) error
}
