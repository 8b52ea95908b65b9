package memory

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
)

type seedOrder struct {
	id     order.ID
	status order.Status
	item   string
}

var seed = []seedOrder{
	{"12345", order.InProcessing, "Laptop Gamer"},
	{"67890", order.Shipped, "Curved Monitor"},
	{"11223", order.Delivered, "Mechanical Keyboard"},
	{"44556", order.Cancelled, "Wireless Mouse"},
	{"77777", order.InProcessing, "Webcam HD"},
	{"RETRY123", order.InProcessing, "Retry Item"},
}

// SeedOrders returns the demo order set. Every call builds fresh instances.
func SeedOrders() ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(seed))

	var err error
	for _, s := range seed {
		o, newErr := order.NewOrder(s.id, s.status, s.item)
		if newErr != nil {
			err = errors.Join(err, newErr)
			continue
		}
		orders = append(orders, o)
	}
	if err != nil {
		return nil, err
	}

	return orders, nil
}
