// Package notification delivers prioritization notices to customers.
//
// Two channels exist: LogNotifier records the notice as a structured log entry after a
// simulated delivery latency, KafkaNotifier publishes it as a NotificationEvent.
package notification

import (
	"fmt"

	"orderdesk/internal/core/domain/model/order"
)

// PrioritizedMessage is the text sent to a customer whose order was prioritized.
func PrioritizedMessage(orderID order.ID, customerID string) string {
	return fmt.Sprintf(
		"Dear customer %s, your order %s has been prioritized and will be processed with urgency.",
		customerID, orderID,
	)
}
