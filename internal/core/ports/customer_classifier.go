package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/order"
)

// CustomerClassifier resolves the customer behind an order.
type CustomerClassifier interface {
	Classify(ctx context.Context, orderID order.ID) (customer.Customer, error)
}

// ClassifierFunc adapts a plain function to CustomerClassifier.
type ClassifierFunc func(ctx context.Context, orderID order.ID) (customer.Customer, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, orderID order.ID) (customer.Customer, error) {
	return f(ctx, orderID)
}
