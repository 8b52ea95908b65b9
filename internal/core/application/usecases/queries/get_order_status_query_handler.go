package queries

import (
	"context"

	"orderdesk/internal/core/application/lookup"
	"orderdesk/internal/core/domain/model/order"
)

// OrderLookup resolves an order id under the retry policy.
type OrderLookup interface {
	Resolve(ctx context.Context, id order.ID) (lookup.Result, error)
}

// GetOrderStatusQueryHandler answers order status queries through the retrying lookup,
// so transient store failures are absorbed the same way as in free-text resolution.
type GetOrderStatusQueryHandler struct {
	lookup OrderLookup
}

// NewGetOrderStatusQueryHandler creates the handler.
func NewGetOrderStatusQueryHandler(l OrderLookup) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{lookup: l}
}

// Handle looks the order up. A missing order is a response with Found set to false, not an error.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	res, err := h.lookup.Resolve(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response := GetOrderStatusQueryResponse{
		OrderID:  query.OrderID(),
		Found:    res.Found,
		Attempts: res.Attempts,
	}
	if res.Found {
		response.Status = res.Order.Status()
		response.Item = res.Order.Item()
	}

	return response, nil
}
