package services

import (
	"errors"
	"fmt"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/unit"
)

var (
	// ErrSchedulingConflict is returned when the requested period overlaps a
	// pending or active order on the same unit.
	ErrSchedulingConflict = errors.New("storage unit is already booked for the requested period")

	// ErrNoUnitsAvailable is returned when no unit of the requested size is free
	// for the whole requested period.
	ErrNoUnitsAvailable = errors.New("no storage units of the requested size are available")
)

// UnitAllocator decides whether a unit can be booked for a period and books it.
//
// Business rules:
//   - Only pending and active orders block a unit; expired and completed ones never do
//   - Two rentals conflict iff their half-open intervals intersect
//   - When several units qualify, the first one in the given order wins
//   - The unit's occupancy is re-synced after every booking
//
// Callers must hold a lock on each unit row for the whole check-and-book sequence
// and pass every non-terminal order of the unit.
//
// Example usage:
//
//	allocator := services.NewUnitAllocator()
//	chosen, err := allocator.Allocate(units, ordersByUnit, period)
//	if errors.Is(err, services.ErrNoUnitsAvailable) {
//	    return err
//	}
//	o, err := allocator.Reserve(chosen, ordersByUnit[chosen.ID()], orderID, userID, period, delivery, now)
type UnitAllocator struct{}

func NewUnitAllocator() UnitAllocator {
	return UnitAllocator{}
}

// CheckAvailability fails with ErrSchedulingConflict when period overlaps a
// non-terminal order of the unit.
func (a UnitAllocator) CheckAvailability(u *unit.StorageUnit, orders []*order.Order, period kernel.RentalPeriod) error {
	if err := errors.Join(u.Validate(), period.Validate()); err != nil {
		return err
	}

	for _, existing := range orders {
		if err := existing.Validate(); err != nil {
			return err
		}
		if !existing.UnitID().IsEqual(u.ID()) || existing.IsTerminal() {
			continue
		}
		if existing.Period().Overlaps(period) {
			return fmt.Errorf("%w: unit %s is booked from %s until %s",
				ErrSchedulingConflict,
				u.ID(),
				existing.Period().Start().Format(time.DateOnly),
				existing.End().Format(time.DateOnly),
			)
		}
	}

	return nil
}

// Allocate returns the first unit that is free for the whole period.
// ordersByUnit holds the non-terminal orders of each candidate.
func (a UnitAllocator) Allocate(
	units []*unit.StorageUnit,
	ordersByUnit map[kernel.UUID][]*order.Order,
	period kernel.RentalPeriod,
) (*unit.StorageUnit, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	for _, candidate := range units {
		err := a.CheckAvailability(candidate, ordersByUnit[candidate.ID()], period)
		if errors.Is(err, ErrSchedulingConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return candidate, nil
	}

	return nil, ErrNoUnitsAvailable
}

// Reserve checks the unit, creates the order with its initial status and
// marks the unit occupied when the new order is pending or active.
func (a UnitAllocator) Reserve(
	u *unit.StorageUnit,
	existing []*order.Order,
	orderID, userID kernel.UUID,
	period kernel.RentalPeriod,
	delivery order.Delivery,
	now time.Time,
) (*order.Order, error) {
	if err := a.CheckAvailability(u, existing, period); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(orderID, userID, u.ID(), u.Size(), period, delivery, now)
	if err != nil {
		return nil, err
	}

	all := make([]*order.Order, 0, len(existing)+1)
	all = append(all, existing...)
	all = append(all, created)
	if _, err = u.SyncOccupancy(all); err != nil {
		return nil, err
	}

	return created, nil
}
