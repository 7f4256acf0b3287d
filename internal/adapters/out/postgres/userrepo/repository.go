package userrepo

import (
	"context"
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/user"
	"selfstorage/internal/adapters/out/postgres/pgerr"
	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add user", err)
	}

	return nil
}

// Update overwrites the contact columns.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "address").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap("update user", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, pgerr.Wrap("get user", err)
	}

	return toDomain(dto)
}

// Delete removes the user row. It fails while the user still has orders.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return pgerr.Wrap("delete user", err)
	}

	return nil
}
