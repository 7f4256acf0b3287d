package unitrepo

import (
	"context"
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/unit"
	"selfstorage/internal/adapters/out/postgres/pgerr"
	"selfstorage/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const registryOrder = "warehouses.created_at, storage_units.created_at, storage_units.id"

// GormStorageUnitRepository implements ports.StorageUnitRepository using GORM.
type GormStorageUnitRepository struct {
	db *gorm.DB
}

func NewGormStorageUnitRepository(db *gorm.DB) *GormStorageUnitRepository {
	return &GormStorageUnitRepository{db: db}
}

// AddAll inserts the units in one statement.
func (r *GormStorageUnitRepository) AddAll(ctx context.Context, units []*unit.StorageUnit) error {
	if len(units) == 0 {
		return nil
	}

	dtos := make([]StorageUnitDTO, 0, len(units))
	for _, u := range units {
		if err := u.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(u))
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dtos).Error; err != nil {
		return pgerr.Wrap("add storage units", err)
	}

	return nil
}

// Update writes the occupancy flag, the only mutable column of a unit.
func (r *GormStorageUnitRepository) Update(ctx context.Context, aggregate *unit.StorageUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StorageUnitDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("occupied", aggregate.IsOccupied())
	if result.Error != nil {
		return pgerr.Wrap("update storage unit", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storage unit", aggregate.ID().String())
	}

	return nil
}

func (r *GormStorageUnitRepository) Get(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate loads the unit with SELECT ... FOR UPDATE.
func (r *GormStorageUnitRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormStorageUnitRepository) get(db *gorm.DB, id kernel.UUID) (*unit.StorageUnit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StorageUnitDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storage unit", id.String())
		}
		return nil, pgerr.Wrap("get storage unit", err)
	}

	return toDomain(dto)
}

func (r *GormStorageUnitRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*unit.StorageUnit, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	return r.find("get storage units", r.locked(ctx).Where("storage_units.id IN ?", raw))
}

func (r *GormStorageUnitRepository) GetBySizeForUpdate(ctx context.Context, size kernel.Size) ([]*unit.StorageUnit, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	return r.find("get storage units by size", r.locked(ctx).Where("storage_units.size = ?", size.String()))
}

func (r *GormStorageUnitRepository) GetByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*unit.StorageUnit, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	return r.find("get warehouse units", r.registry(ctx).Where("storage_units.warehouse_id = ?", warehouseID.Bytes()))
}

func (r *GormStorageUnitRepository) GetOccupied(ctx context.Context) ([]*unit.StorageUnit, error) {
	return r.find("get occupied units", r.registry(ctx).Where("storage_units.occupied = ?", true))
}

// registry selects units joined to their warehouse so they can be sorted in registry order.
func (r *GormStorageUnitRepository) registry(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&StorageUnitDTO{}).
		Select("storage_units.*").
		Joins("JOIN warehouses ON warehouses.id = storage_units.warehouse_id").
		Order(registryOrder)
}

// locked is registry with FOR UPDATE OF storage_units; warehouse rows stay unlocked.
func (r *GormStorageUnitRepository) locked(ctx context.Context) *gorm.DB {
	return r.registry(ctx).Clauses(clause.Locking{
		Strength: "UPDATE",
		Table:    clause.Table{Name: "storage_units"},
	})
}

func (r *GormStorageUnitRepository) find(op string, query *gorm.DB) ([]*unit.StorageUnit, error) {
	var dtos []StorageUnitDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap(op, err)
	}

	return toDomainList(dtos)
}
