package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/batch"
	"orderdesk/internal/core/domain/model/kernel"
)

// BatchOrderRepository defines the persistence contract for registered batch orders.
type BatchOrderRepository interface {
	// Add persists a new batch order.
	Add(ctx context.Context, aggregate *batch.BatchOrder) error

	// Get retrieves a batch order by id.
	// Returns an errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*batch.BatchOrder, error)
}
