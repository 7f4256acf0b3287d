package notifier

import (
	"context"
	"log/slog"

	"selfstorage/internal/core/ports"
)

// LogNotifier writes reminders to the log. It is used when no Kafka brokers are configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, event ports.ReminderEvent) error {
	n.logger.InfoContext(ctx, "Reminder due",
		"order_id", event.OrderID.String(),
		"user_id", event.UserID.String(),
		"message", event.Message,
	)
	return nil
}
