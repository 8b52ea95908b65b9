package order

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is an immutable purchase record: an identifier, its fulfilment status and the item bought.
//
// Order follows these invariants:
//   - Must have a non-blank identifier
//   - Must have a valid status
//   - Must have a non-blank item name
//   - Can only be created through NewOrder
type Order struct {
	id     ID
	status Status
	item   string

	guard guard.ConstructorGuard
}

// NewOrder creates a validated Order.
//
// Example:
//
//	o, err := order.NewOrder("12345", order.InProcessing, "Laptop Gamer")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id ID, status Status, item string) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setItem(item),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was built through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() ID {
	return o.id
}

// Status returns the fulfilment status.
func (o *Order) Status() Status {
	return o.status
}

// Item returns the name of the ordered item.
func (o *Order) Item() string {
	return o.item
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItem(item string) error {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("item")
	}
	o.item = trimmed
	return nil
}
