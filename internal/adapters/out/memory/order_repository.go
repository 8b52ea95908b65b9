package memory

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// OrderRepository serves orders from a map filled once at construction.
// It never changes afterwards, so reads need no locking.
type OrderRepository struct {
	orders map[order.ID]*order.Order
}

// NewOrderRepository creates a repository holding orders.
// Returns an error for invalid orders or duplicate ids.
func NewOrderRepository(orders ...*order.Order) (*OrderRepository, error) {
	r := &OrderRepository{orders: make(map[order.ID]*order.Order, len(orders))}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.orders[o.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("duplicate order id %s", o.ID()))
		}
		r.orders[o.ID()] = o
	}

	return r, nil
}

// NewSeededOrderRepository creates a repository holding SeedOrders.
func NewSeededOrderRepository() (*OrderRepository, error) {
	orders, err := SeedOrders()
	if err != nil {
		return nil, err
	}
	return NewOrderRepository(orders...)
}

// Get returns the order with the given id or an ObjectNotFoundError.
func (r *OrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	return len(r.orders)
}
