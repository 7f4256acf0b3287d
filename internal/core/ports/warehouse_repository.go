package ports

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/warehouse"
)

type WarehouseRepository interface {
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetForUpdate locks the warehouse row; provisioning holds it while checking for units.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)
}
