// Package notifier delivers reminder events to the notification service.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/clock"

	"github.com/segmentio/kafka-go"
)

// ReminderMessage is the JSON payload published for every reminder.
type ReminderMessage struct {
	OrderID string    `json:"order_id"`
	UserID  string    `json:"user_id"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes reminders to a topic, keyed by user id so one
// customer's reminders stay in order on a single partition.
type KafkaNotifier struct {
	writer messageWriter
	clock  clock.Clock
}

// batchTimeout bounds how long a single synchronous write waits for more
// messages before flushing. The sweep publishes one reminder at a time.
const batchTimeout = 10 * time.Millisecond

func NewKafkaNotifier(brokers []string, topic string, clk clock.Clock) *KafkaNotifier {
	return NewKafkaNotifierWithWriter(newWriter(brokers, topic), clk)
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           10 * time.Second,
	}
}

func NewKafkaNotifierWithWriter(writer messageWriter, clk clock.Clock) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, clock: clk}
}

// Notify returns once the brokers acknowledged the message.
func (n *KafkaNotifier) Notify(ctx context.Context, event ports.ReminderEvent) error {
	payload, err := json.Marshal(ReminderMessage{
		OrderID: event.OrderID.String(),
		UserID:  event.UserID.String(),
		Message: event.Message,
		SentAt:  n.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("encode reminder %s: %w", event.OrderID, err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("publish reminder %s: %w", event.OrderID, err)
	}

	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
