// Package warehouserepo persists warehouses. A warehouse owns its storage units;
// deleting the row cascades to them.
package warehouserepo

import (
	"time"

	"selfstorage/internal/adapters/out/postgres/unitrepo"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

type WarehouseDTO struct {
	ID        uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Name      string                    `gorm:"type:varchar(255);not null"`
	Address   string                    `gorm:"type:varchar(512)"`
	CreatedAt time.Time                 `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	Units     []unitrepo.StorageUnitDTO `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "warehouse_dtos".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:        w.ID().Bytes(),
		Name:      w.Name(),
		Address:   w.Address(),
		CreatedAt: w.CreatedAt(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, dto.Address, dto.CreatedAt)
}
