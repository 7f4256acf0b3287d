// Package ports defines the contracts between the self-storage core and its
// infrastructure: repositories, the unit of work, the reminder notifier and
// the sweep lock.
package ports

import (
	"context"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Implementations return errs.ErrObjectNotFound for missing orders and wrap every
// other datastore failure in errs.StorageUnavailableError.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and reminder changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// MarkReminderSent records the reminder timestamp of an order that has none yet.
	// It touches no other column and takes no row lock, so it is safe to call after the
	// transaction that found the reminder due has committed. It reports whether a row changed.
	MarkReminderSent(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)

	// Delete removes an order. Deleting a missing order is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetNonTerminalByUnit returns the pending and active orders of a unit ordered by rental start.
	// Callers that act on the result must hold the unit row lock.
	GetNonTerminalByUnit(ctx context.Context, unitID kernel.UUID) ([]*order.Order, error)

	// GetNonTerminal returns every pending and active order ordered by rental start.
	GetNonTerminal(ctx context.Context) ([]*order.Order, error)

	// GetByUser returns all orders of a user, newest first.
	GetByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
