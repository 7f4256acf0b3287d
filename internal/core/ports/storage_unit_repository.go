package ports

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/unit"
)

// StorageUnitRepository defines the persistence contract for the unit registry.
//
// Lists are returned in registry order: warehouse creation time, unit creation time, unit id.
// The ForUpdate variants take row locks held until the surrounding transaction ends;
// they must be called inside UnitOfWork.Begin/Commit.
type StorageUnitRepository interface {
	AddAll(ctx context.Context, units []*unit.StorageUnit) error

	// Update persists the occupancy flag.
	Update(ctx context.Context, aggregate *unit.StorageUnit) error

	Get(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error)

	// GetManyForUpdate locks the given units in registry order. Missing ids are skipped.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*unit.StorageUnit, error)

	// GetBySizeForUpdate locks every unit of the size in registry order,
	// so concurrent bookings of the same size queue up instead of deadlocking.
	GetBySizeForUpdate(ctx context.Context, size kernel.Size) ([]*unit.StorageUnit, error)

	GetByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*unit.StorageUnit, error)

	// GetOccupied returns the units whose cached flag says occupied.
	GetOccupied(ctx context.Context) ([]*unit.StorageUnit, error)
}
