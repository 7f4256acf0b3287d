package unit

import (
	"errors"
	"fmt"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/pkg/errs"
	"selfstorage/internal/pkg/guard"
)

var ErrStorageUnitIsNotConstructed = errors.New("StorageUnit must be created via NewStorageUnit or RestoreStorageUnit")

// StorageUnit is a physical storage cell of a fixed size inside a warehouse.
//
// The occupied flag is a cache of "the unit has at least one pending or active order".
// It has no setter: SyncOccupancy and Release recompute it from the orders.
type StorageUnit struct {
	id          kernel.UUID
	warehouseID kernel.UUID
	size        kernel.Size
	occupied    bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewStorageUnit creates a free unit.
func NewStorageUnit(id, warehouseID kernel.UUID, size kernel.Size, createdAt time.Time) (*StorageUnit, error) {
	return RestoreStorageUnit(id, warehouseID, size, false, createdAt)
}

// RestoreStorageUnit reconstructs a unit loaded from storage, including its cached occupancy.
func RestoreStorageUnit(
	id, warehouseID kernel.UUID,
	size kernel.Size,
	occupied bool,
	createdAt time.Time,
) (*StorageUnit, error) {
	u := &StorageUnit{
		occupied:  occupied,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setWarehouseID(warehouseID),
		u.setSize(size),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *StorageUnit) Validate() error {
	if u == nil {
		return ErrStorageUnitIsNotConstructed
	}
	return u.guard.Validate(ErrStorageUnitIsNotConstructed)
}

func (u *StorageUnit) IsEqual(other *StorageUnit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *StorageUnit) ID() kernel.UUID {
	return u.id
}

func (u *StorageUnit) WarehouseID() kernel.UUID {
	return u.warehouseID
}

func (u *StorageUnit) Size() kernel.Size {
	return u.size
}

func (u *StorageUnit) CreatedAt() time.Time {
	return u.createdAt
}

func (u *StorageUnit) IsOccupied() bool {
	return u.occupied
}

// SyncOccupancy sets the unit occupied iff at least one of the orders is pending or active.
// The slice must hold every order of this unit that could be non-terminal;
// orders of other units are rejected. It reports whether the flag changed.
func (u *StorageUnit) SyncOccupancy(orders []*order.Order) (bool, error) {
	return u.recompute(orders, nil)
}

// Release recomputes occupancy as if the given order no longer held the unit.
// Calling it on a free unit, or twice for the same order, changes nothing.
func (u *StorageUnit) Release(orderID kernel.UUID, orders []*order.Order) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	return u.recompute(orders, &orderID)
}

func (u *StorageUnit) recompute(orders []*order.Order, ignore *kernel.UUID) (bool, error) {
	occupied := false

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return false, err
		}
		if !o.UnitID().IsEqual(u.id) {
			return false, errs.NewValueIsInvalidErrorWithCause(
				"order",
				fmt.Errorf("order %s belongs to unit %s, not %s", o.ID(), o.UnitID(), u.id),
			)
		}
		if ignore != nil && o.ID().IsEqual(*ignore) {
			continue
		}
		if !o.IsTerminal() {
			occupied = true
		}
	}

	changed := occupied != u.occupied
	u.occupied = occupied
	return changed, nil
}

func (u *StorageUnit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *StorageUnit) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouse id", err)
	}
	u.warehouseID = id
	return nil
}

func (u *StorageUnit) setSize(size kernel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	u.size = size
	return nil
}
