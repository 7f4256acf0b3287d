package warehouserepo

import (
	"context"
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/warehouse"
	"selfstorage/internal/adapters/out/postgres/pgerr"
	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add warehouse", err)
	}

	return nil
}

func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormWarehouseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormWarehouseRepository) get(db *gorm.DB, id kernel.UUID) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, pgerr.Wrap("get warehouse", err)
	}

	return toDomain(dto)
}
