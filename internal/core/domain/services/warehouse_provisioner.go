package services

import (
	"errors"
	"fmt"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/unit"
	"selfstorage/internal/core/domain/model/warehouse"
)

// UnitsPerSize is how many units of each size a warehouse gets.
const UnitsPerSize = 2

// WarehouseProvisioner seeds a warehouse with its fixed set of units.
type WarehouseProvisioner struct{}

func NewWarehouseProvisioner() WarehouseProvisioner {
	return WarehouseProvisioner{}
}

// Provision returns the units to create for w: UnitsPerSize of every size when
// the warehouse has no units yet, nothing otherwise.
// Creation times step by a microsecond so registry order is small, medium, large.
func (p WarehouseProvisioner) Provision(
	w *warehouse.Warehouse,
	existing []*unit.StorageUnit,
	now time.Time,
) ([]*unit.StorageUnit, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	for _, u := range existing {
		if !u.WarehouseID().IsEqual(w.ID()) {
			return nil, fmt.Errorf("unit %s does not belong to warehouse %s", u.ID(), w.ID())
		}
	}
	if len(existing) > 0 {
		return nil, nil
	}

	sizes := kernel.AllSizes()
	created := make([]*unit.StorageUnit, 0, len(sizes)*UnitsPerSize)
	var problems []error

	for _, size := range sizes {
		for range UnitsPerSize {
			at := now.Add(time.Duration(len(created)) * time.Microsecond)
			u, err := unit.NewStorageUnit(kernel.NewUUID(), w.ID(), size, at)
			if err != nil {
				problems = append(problems, err)
				continue
			}
			created = append(created, u)
		}
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return created, nil
}
