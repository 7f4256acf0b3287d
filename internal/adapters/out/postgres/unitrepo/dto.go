// Package unitrepo persists storage units. Units are listed in registry order
// (warehouse created_at, unit created_at, id), which is also the row lock order.
package unitrepo

import (
	"time"

	"selfstorage/internal/adapters/out/postgres/orderrepo"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/unit"

	"github.com/google/uuid"
)

// StorageUnitDTO represents the database structure for persisting storage units.
// Orders reference their unit and go away with it.
type StorageUnitDTO struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Size        string               `gorm:"type:varchar(16);not null;index:idx_storage_units_size_occupied,priority:1"`
	Occupied    bool                 `gorm:"not null;default:false;index:idx_storage_units_size_occupied,priority:2"`
	CreatedAt   time.Time            `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	Orders      []orderrepo.OrderDTO `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "storage_unit_dtos".
func (StorageUnitDTO) TableName() string {
	return "storage_units"
}

func fromDomain(u *unit.StorageUnit) StorageUnitDTO {
	return StorageUnitDTO{
		ID:          u.ID().Bytes(),
		WarehouseID: u.WarehouseID().Bytes(),
		Size:        u.Size().String(),
		Occupied:    u.IsOccupied(),
		CreatedAt:   u.CreatedAt(),
	}
}

func toDomain(dto StorageUnitDTO) (*unit.StorageUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	size, err := kernel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	return unit.RestoreStorageUnit(id, warehouseID, size, dto.Occupied, dto.CreatedAt)
}

func toDomainList(dtos []StorageUnitDTO) ([]*unit.StorageUnit, error) {
	units := make([]*unit.StorageUnit, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, nil
}
