package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaNotifier_PublishesEvent(t *testing.T) {
	writer := &fakeWriter{}
	notifier := NewKafkaNotifier(writer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ack, err := notifier.NotifyPrioritized(t.Context(), "12345", "VIP_CUSTOMER")
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte("VIP_CUSTOMER"), msg.Key)

	var event NotificationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, ack.MessageID, event.MessageID)
	assert.Equal(t, "12345", event.OrderID)
	assert.Equal(t, "VIP_CUSTOMER", event.CustomerID)
	assert.Equal(t, PrioritizedMessage("12345", "VIP_CUSTOMER"), event.Message)
	assert.Equal(t, ack.Message, event.Message)

	require.NoError(t, notifier.Close())
	assert.True(t, writer.closed)
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	notifier := NewKafkaNotifier(writer, nil)

	_, err := notifier.NotifyPrioritized(t.Context(), "12345", "VIP_CUSTOMER")
	require.Error(t, err)
	assert.ErrorIs(t, err, writer.err)
	assert.Contains(t, err.Error(), "failed to publish notification event")
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, DefaultTopic)
	assert.Equal(t, DefaultTopic, w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
