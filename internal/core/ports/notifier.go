package ports

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
)

// ReminderEvent tells the customer their rental is about to end.
type ReminderEvent struct {
	OrderID kernel.UUID
	UserID  kernel.UUID
	Message string
}

// Notifier hands reminder events to the external notification service.
// A nil error means the event was accepted for delivery.
type Notifier interface {
	Notify(ctx context.Context, event ReminderEvent) error
}
