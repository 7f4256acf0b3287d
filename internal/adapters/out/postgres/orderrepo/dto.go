// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Status, size and delivery method are stored as their lowercase codes so the table stays
// readable from SQL and from the read models in the queries package.
package orderrepo

import (
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite (unit_id, status) index serves the per-unit overlap check.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	UnitID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_unit_status,priority:1"`
	UnitSize       string     `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time  `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	StartsAt       time.Time  `gorm:"type:timestamptz;not null"`
	Days           int        `gorm:"type:int;not null"`
	Status         string     `gorm:"type:varchar(16);not null;index:idx_orders_unit_status,priority:2"`
	DeliveryMethod string     `gorm:"type:varchar(16);not null"`
	PickupAddress  string     `gorm:"type:varchar(512)"`
	ReminderSentAt *time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		UserID:         o.UserID().Bytes(),
		UnitID:         o.UnitID().Bytes(),
		UnitSize:       o.UnitSize().String(),
		CreatedAt:      o.CreatedAt(),
		StartsAt:       o.Period().Start(),
		Days:           o.Period().Days(),
		Status:         o.Status().String(),
		DeliveryMethod: o.Delivery().Method().String(),
		PickupAddress:  o.Delivery().PickupAddress(),
		ReminderSentAt: o.ReminderSentAt(),
	}
}

// toDomain reconstructs the aggregate with RestoreOrder; the stored status is trusted as is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}

	size, err := kernel.ParseSize(dto.UnitSize)
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewRentalPeriod(dto.StartsAt, dto.Days)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.ParseDeliveryMethod(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDelivery(method, dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, unitID, size, dto.CreatedAt, period, status, delivery, dto.ReminderSentAt)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
