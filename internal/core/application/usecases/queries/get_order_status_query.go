package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery asks for the status of one order.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery("12345")
//	if err != nil {
//	    return err // blank id
//	}
//	res, err := handler.Handle(ctx, query)
type GetOrderStatusQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates the query. Returns an errs.ValueIsRequiredError for a blank id.
func NewGetOrderStatusQuery(rawOrderID string) (GetOrderStatusQuery, error) {
	id, err := order.NewID(rawOrderID)
	if err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderStatusQuery) OrderID() order.ID {
	return q.orderID
}

// GetOrderStatusQueryResponse describes the looked-up order. Status and Item are set only when Found.
type GetOrderStatusQueryResponse struct {
	OrderID  order.ID
	Found    bool
	Status   order.Status
	Item     string
	Attempts int
}
