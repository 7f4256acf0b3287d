package order

import (
	"errors"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/tariff"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is a booking of one storage unit by one user for one rental period.
// It is the aggregate root of the reservation lifecycle.
//
// Order follows these invariants:
//   - Status is only changed through ForPeriod/Refresh (time) and Complete (pickup)
//   - The unit size is a snapshot taken at booking time and drives pricing
//   - A reminder is recorded at most once
type Order struct {
	id             kernel.UUID
	userID         kernel.UUID
	unitID         kernel.UUID
	unitSize       kernel.Size
	createdAt      time.Time
	period         kernel.RentalPeriod
	status         Status
	delivery       Delivery
	reminderSentAt *time.Time

	isConstructed bool
}

// NewOrder books the unit and derives the initial status from the period and now.
// A period that already ended yields an Expired order.
//
// Example:
//
//	period, _ := kernel.NewRentalPeriod(start, 30)
//	o, err := order.NewOrder(kernel.NewUUID(), userID, unit.ID(), unit.Size(), period, order.NewSelfDelivery(), now)
func NewOrder(
	id, userID, unitID kernel.UUID,
	unitSize kernel.Size,
	period kernel.RentalPeriod,
	delivery Delivery,
	now time.Time,
) (*Order, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return RestoreOrder(id, userID, unitID, unitSize, now, period, ForPeriod(period, now), delivery, nil)
}

// RestoreOrder reconstructs an order loaded from storage without re-deriving its status.
func RestoreOrder(
	id, userID, unitID kernel.UUID,
	unitSize kernel.Size,
	createdAt time.Time,
	period kernel.RentalPeriod,
	status Status,
	delivery Delivery,
	reminderSentAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		setID(&o.id, id),
		setID(&o.userID, userID),
		setID(&o.unitID, unitID),
		o.setUnitSize(unitSize),
		o.setPeriod(period),
		o.setStatus(status),
		o.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	if reminderSentAt != nil {
		sent := reminderSentAt.UTC()
		o.reminderSentAt = &sent
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) UnitID() kernel.UUID {
	return o.unitID
}

func (o *Order) UnitSize() kernel.Size {
	return o.unitSize
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Period() kernel.RentalPeriod {
	return o.period
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Delivery() Delivery {
	return o.delivery
}

// ReminderSentAt is nil until MarkReminderSent is called.
func (o *Order) ReminderSentAt() *time.Time {
	if o.reminderSentAt == nil {
		return nil
	}
	sent := *o.reminderSentAt
	return &sent
}

// IsTerminal reports whether the order is Completed or Expired.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// Refresh applies the time driven transition and reports whether the status changed.
func (o *Order) Refresh(now time.Time) bool {
	next := o.status.Refresh(o.period, now)
	if next == o.status {
		return false
	}
	o.status = next
	return true
}

// Complete records the pickup. The caller frees the unit by re-syncing its occupancy.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// TotalCost is the number of rented days times the daily rate of the unit size.
func (o *Order) TotalCost(rates tariff.RateTable) (int64, error) {
	return rates.Cost(o.unitSize, o.period.Days())
}

func (o *Order) End() time.Time {
	return o.period.End()
}

func (o *Order) ReminderAt() time.Time {
	return o.period.ReminderAt()
}

// IsExpired reports whether now is strictly past the end of the rental,
// regardless of the stored status.
func (o *Order) IsExpired(now time.Time) bool {
	return o.period.IsOver(now)
}

func (o *Order) DaysLeft(now time.Time) int {
	return o.period.DaysLeft(now)
}

// IsReminderDue reports whether a reminder should be sent now: the reminder
// time has come, the order is still running and no reminder was sent yet.
func (o *Order) IsReminderDue(now time.Time) bool {
	return o.reminderSentAt == nil && !o.IsTerminal() && !o.ReminderAt().After(now)
}

// MarkReminderSent records the first reminder. Later calls keep the original time.
func (o *Order) MarkReminderSent(now time.Time) {
	if o.reminderSentAt != nil {
		return
	}
	sent := now.UTC()
	o.reminderSentAt = &sent
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func (o *Order) setUnitSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.unitSize = size
	return nil
}

func (o *Order) setPeriod(period kernel.RentalPeriod) error {
	if err := period.Validate(); err != nil {
		return err
	}
	o.period = period
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}
