package customer

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

const (
	// VipCustomerID identifies the simulated VIP customer.
	VipCustomerID = "VIP_CUSTOMER"

	// RegularCustomerID identifies every other simulated customer.
	RegularCustomerID = "REGULAR_CUSTOMER"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the identity a notification is addressed to, together with its Class.
type Customer struct { //nolint:recvcheck //using for validation
	id    string
	class Class

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer. The id is trimmed and must not be blank.
func NewCustomer(id string, class Class) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setClass(class),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// VipCustomer returns the simulated VIP customer.
func VipCustomer() Customer {
	return Customer{id: VipCustomerID, class: Vip, guard: guard.NewConstructorGuard()}
}

// RegularCustomer returns the simulated regular customer.
func RegularCustomer() Customer {
	return Customer{id: RegularCustomerID, class: Regular, guard: guard.NewConstructorGuard()}
}

// Validate ensures the Customer was built through a constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c Customer) ID() string {
	return c.id
}

// Class returns the customer tier.
func (c Customer) Class() Class {
	return c.class
}

func (c *Customer) setID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.id = trimmed
	return nil
}

func (c *Customer) setClass(class Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	c.class = class
	return nil
}
