package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic receives prioritization events when no topic is configured.
const DefaultTopic = "order-prioritized"

// NotificationEvent is the Kafka payload of a prioritization notice.
type NotificationEvent struct {
	MessageID  string    `json:"message_id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sent_at"`
}

// messageWriter is the subset of *kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes prioritization notices, keyed by customer id so that the
// notices of one customer stay ordered within a partition.
type KafkaNotifier struct {
	writer messageWriter
	logger *slog.Logger
	now    func() time.Time
}

// NewKafkaWriter creates a synchronous writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

// NewKafkaNotifier creates a KafkaNotifier writing through writer.
func NewKafkaNotifier(writer messageWriter, logger *slog.Logger) *KafkaNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaNotifier{
		writer: writer,
		logger: logger.With("component", "KafkaNotifier"),
		now:    time.Now,
	}
}

// NotifyPrioritized publishes the notice and waits for the broker acknowledgement.
func (n *KafkaNotifier) NotifyPrioritized(ctx context.Context, orderID order.ID, customerID string) (ports.Ack, error) {
	event := NotificationEvent{
		MessageID:  uuid.NewString(),
		OrderID:    orderID.String(),
		CustomerID: customerID,
		Message:    PrioritizedMessage(orderID, customerID),
		SentAt:     n.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return ports.Ack{}, fmt.Errorf("failed to marshal notification event: %w", err)
	}

	if err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(customerID),
		Value: payload,
	}); err != nil {
		return ports.Ack{}, fmt.Errorf("failed to publish notification event: %w", err)
	}

	n.logger.InfoContext(ctx, "prioritization notification published",
		"messageId", event.MessageID, "orderId", orderID, "customerId", customerID)

	return ports.Ack{MessageID: event.MessageID, Message: event.Message, SentAt: event.SentAt}, nil
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
