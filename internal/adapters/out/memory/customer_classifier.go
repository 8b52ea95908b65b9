package memory

import (
	"context"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/order"
)

// DefaultVipOrderID is the order placed by the simulated VIP customer.
const DefaultVipOrderID = order.ID("12345")

// SimulatedClassifier stands in for a customer lookup: one configured order id belongs
// to the VIP customer, every other order to the regular one.
type SimulatedClassifier struct {
	vipOrderID order.ID
}

// NewSimulatedClassifier creates a classifier treating vipOrderID as the VIP order.
func NewSimulatedClassifier(vipOrderID order.ID) SimulatedClassifier {
	return SimulatedClassifier{vipOrderID: vipOrderID}
}

// Classify returns the customer who placed orderID.
func (c SimulatedClassifier) Classify(_ context.Context, orderID order.ID) (customer.Customer, error) {
	if c.vipOrderID != "" && orderID == c.vipOrderID {
		return customer.VipCustomer(), nil
	}
	return customer.RegularCustomer(), nil
}
