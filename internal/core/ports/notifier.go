package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// Ack confirms that a prioritization notification was handed off.
type Ack struct {
	MessageID string
	Message   string
	SentAt    time.Time
}

// Notifier tells a customer that their order was prioritized.
type Notifier interface {
	// NotifyPrioritized sends the prioritization notice for orderID to customerID and
	// waits for the channel to confirm it.
	NotifyPrioritized(ctx context.Context, orderID order.ID, customerID string) (Ack, error)
}
