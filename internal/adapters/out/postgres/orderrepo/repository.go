package orderrepo

import (
	"context"
	"errors"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/adapters/out/postgres/pgerr"
	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
)

// nonTerminal lists the status codes that still hold a unit.
var nonTerminal = []string{order.Pending.String(), order.Active.String()}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add order", err)
	}

	return nil
}

// Update writes the mutable columns of an order: status and reminder timestamp.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "reminder_sent_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// MarkReminderSent stamps reminder_sent_at only while it is still NULL, so a
// reminder recorded by an earlier sweep keeps its original timestamp.
func (r *GormOrderRepository) MarkReminderSent(ctx context.Context, id kernel.UUID, at time.Time) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND reminder_sent_at IS NULL", id.Bytes()).
		Update("reminder_sent_at", at.UTC())
	if result.Error != nil {
		return false, pgerr.Wrap("mark reminder sent", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return pgerr.Wrap("delete order", err)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Wrap("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetNonTerminalByUnit(ctx context.Context, unitID kernel.UUID) ([]*order.Order, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status IN ?", unitID.Bytes(), nonTerminal).
		Order("starts_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap("get unit orders", err)
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) GetNonTerminal(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", nonTerminal).
		Order("starts_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap("get non-terminal orders", err)
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) GetByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap("get user orders", err)
	}

	return toDomainList(dtos)
}
