package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrRegisterBatchOrderCommandIsNotConstructed = errors.New(
	"RegisterBatchOrderCommand must be created via NewRegisterBatchOrderCommand constructor",
)

// RegisterBatchOrderCommand asks to register several items ordered by one customer.
//
// Example:
//
//	cmd, err := NewRegisterBatchOrderCommand("ACME", []string{"Laptop Gamer", "Webcam HD"})
//	if err != nil {
//	    return fmt.Errorf("invalid batch order: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterBatchOrderCommand struct { //nolint:recvcheck //using for validation
	customer string
	items    []string

	guard guard.ConstructorGuard
}

// NewRegisterBatchOrderCommand validates that customer is not blank and that items
// holds at least one entry, none of them blank.
func NewRegisterBatchOrderCommand(customer string, items []string) (RegisterBatchOrderCommand, error) {
	cmd := RegisterBatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setItems(items),
	); err != nil {
		return RegisterBatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterBatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBatchOrderCommandIsNotConstructed)
}

// Customer returns the ordering customer.
func (c RegisterBatchOrderCommand) Customer() string {
	return c.customer
}

// Items returns a copy of the ordered items.
func (c RegisterBatchOrderCommand) Items() []string {
	return slices.Clone(c.items)
}

func (c *RegisterBatchOrderCommand) setCustomer(customer string) error {
	trimmed := strings.TrimSpace(customer)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer")
	}

	c.customer = trimmed
	return nil
}

func (c *RegisterBatchOrderCommand) setItems(items []string) error {
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

	c.items = cleaned
	return nil
}
