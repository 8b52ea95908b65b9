// Package ports defines the contracts between the order-resolution core and its infrastructure.
// Adapters under internal/adapters implement these interfaces; the application layer depends only on them.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository is the read-only order store queried by the resolution pipeline.
type OrderRepository interface {
	// Get retrieves an order by its identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists; any other error
	// is an infrastructure failure.
	Get(ctx context.Context, id order.ID) (*order.Order, error)
}
