package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/clock"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestKafkaNotifier_Notify_PublishesKeyedJSON(t *testing.T) {
	now := time.Date(2025, time.March, 19, 9, 0, 0, 0, time.UTC)
	event := ports.ReminderEvent{
		OrderID: kernel.NewUUID(),
		UserID:  kernel.NewUUID(),
		Message: "Your storage rental ends on 2025-04-02",
	}

	writer := new(MockWriter)
	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 || string(msgs[0].Key) != event.UserID.String() {
			return false
		}

		var payload ReminderMessage
		if err := json.Unmarshal(msgs[0].Value, &payload); err != nil {
			return false
		}
		return payload.OrderID == event.OrderID.String() &&
			payload.UserID == event.UserID.String() &&
			payload.Message == event.Message &&
			payload.SentAt.Equal(now)
	})).Return(nil).Once()

	n := NewKafkaNotifierWithWriter(writer, clock.NewManual(now))

	require.NoError(t, n.Notify(t.Context(), event))
	writer.AssertExpectations(t)
}

func TestKafkaNotifier_Notify_WrapsWriterError(t *testing.T) {
	broker := errors.New("leader not available")
	writer := new(MockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(broker).Once()

	n := NewKafkaNotifierWithWriter(writer, clock.NewManual(time.Now()))
	orderID := kernel.NewUUID()

	err := n.Notify(t.Context(), ports.ReminderEvent{OrderID: orderID, UserID: kernel.NewUUID()})

	require.ErrorIs(t, err, broker)
	assert.Contains(t, err.Error(), orderID.String())
}

func TestKafkaNotifier_Close(t *testing.T) {
	writer := new(MockWriter)
	writer.On("Close").Return(nil).Once()

	require.NoError(t, NewKafkaNotifierWithWriter(writer, clock.System{}).Close())
	writer.AssertExpectations(t)
}

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	orderID := kernel.NewUUID()

	err := NewLogNotifier(logger).Notify(t.Context(), ports.ReminderEvent{
		OrderID: orderID,
		UserID:  kernel.NewUUID(),
		Message: "ends soon",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), orderID.String())
	assert.Contains(t, buf.String(), `"component":"log_notifier"`)
}

func TestNewWriter_FlushesSingleMessagesQuickly(t *testing.T) {
	w := newWriter([]string{"localhost:9092"}, "storage.reminders")

	assert.Equal(t, "storage.reminders", w.Topic)
	assert.LessOrEqual(t, w.BatchTimeout, 50*time.Millisecond)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
