package notification

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/google/uuid"
)

// DefaultLatency is the simulated delivery time of LogNotifier.
const DefaultLatency = 50 * time.Millisecond

// LogNotifier simulates a messaging provider: it waits for latency and logs the notice.
type LogNotifier struct {
	logger  *slog.Logger
	latency time.Duration
	now     func() time.Time
}

// NewLogNotifier creates a LogNotifier. A negative latency is treated as zero.
func NewLogNotifier(logger *slog.Logger, latency time.Duration) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{
		logger:  logger.With("component", "LogNotifier"),
		latency: max(latency, 0),
		now:     time.Now,
	}
}

// NotifyPrioritized waits for the simulated latency, then records the notice.
// It returns ctx.Err() when ctx ends first.
func (n *LogNotifier) NotifyPrioritized(ctx context.Context, orderID order.ID, customerID string) (ports.Ack, error) {
	if n.latency > 0 {
		timer := time.NewTimer(n.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ports.Ack{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return ports.Ack{}, err
	}

	ack := ports.Ack{
		MessageID: uuid.NewString(),
		Message:   PrioritizedMessage(orderID, customerID),
		SentAt:    n.now().UTC(),
	}

	n.logger.InfoContext(ctx, "prioritization notification sent",
		"messageId", ack.MessageID,
		"orderId", orderID,
		"customerId", customerID,
		"message", ack.Message,
	)

	return ack, nil
}
