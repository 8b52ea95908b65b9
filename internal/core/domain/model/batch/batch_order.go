package batch

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrBatchOrderIsNotConstructed is returned when a BatchOrder was not created through a constructor.
var ErrBatchOrderIsNotConstructed = errors.New("BatchOrder must be created via NewBatchOrder constructor")

// BatchOrder groups several items ordered by one customer under a generated id.
type BatchOrder struct {
	id        kernel.UUID
	customer  string
	items     []string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewBatchOrder creates a batch order stamped with the current UTC time.
func NewBatchOrder(id kernel.UUID, customer string, items []string) (*BatchOrder, error) {
	return RestoreBatchOrder(id, customer, items, time.Now().UTC())
}

// RestoreBatchOrder rebuilds a batch order from persisted state.
func RestoreBatchOrder(id kernel.UUID, customer string, items []string, createdAt time.Time) (*BatchOrder, error) {
	b := &BatchOrder{guard: guard.NewConstructorGuard(), createdAt: createdAt}

	if err := errors.Join(
		b.setID(id),
		b.setCustomer(customer),
		b.setItems(items),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the batch order was built through a constructor.
func (b *BatchOrder) Validate() error {
	if b == nil {
		return ErrBatchOrderIsNotConstructed
	}
	return b.guard.Validate(ErrBatchOrderIsNotConstructed)
}

// ID returns the batch order identifier.
func (b *BatchOrder) ID() kernel.UUID {
	return b.id
}

// Customer returns the ordering customer.
func (b *BatchOrder) Customer() string {
	return b.customer
}

// Items returns a copy of the ordered items.
func (b *BatchOrder) Items() []string {
	return slices.Clone(b.items)
}

// CreatedAt returns the registration time.
func (b *BatchOrder) CreatedAt() time.Time {
	return b.createdAt
}

func (b *BatchOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *BatchOrder) setCustomer(customer string) error {
	trimmed := strings.TrimSpace(customer)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	b.customer = trimmed
	return nil
}

func (b *BatchOrder) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	cleaned := make([]string, 0, len(items))
	for i, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			return errs.NewValueIsRequiredErrorWithCause("items", fmt.Errorf("item at index %d is blank", i))
		}
		cleaned = append(cleaned, trimmed)
	}

	b.items = cleaned
	return nil
}
