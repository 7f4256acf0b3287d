package queries

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrGetFreeUnitCountsQueryIsNotConstructed = errors.New(
	"GetFreeUnitCountsQuery must be created via NewGetFreeUnitCountsQuery constructor",
)

// GetFreeUnitCountsQuery counts free units per size, across all warehouses or in one.
type GetFreeUnitCountsQuery struct {
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFreeUnitCountsQuery accepts a nil warehouse id for a count over every warehouse.
func NewGetFreeUnitCountsQuery(warehouseID *kernel.UUID) (GetFreeUnitCountsQuery, error) {
	q := GetFreeUnitCountsQuery{guard: guard.NewConstructorGuard()}

	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetFreeUnitCountsQuery{}, err
		}
		id := *warehouseID
		q.warehouseID = &id
	}

	return q, nil
}

func (q GetFreeUnitCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeUnitCountsQueryIsNotConstructed)
}

func (q GetFreeUnitCountsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

type FreeUnitCount struct {
	Size kernel.Size
	Free int64
}

type FreeUnitCounts struct {
	Total  int64
	BySize []FreeUnitCount
}
