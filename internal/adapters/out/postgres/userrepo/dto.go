// Package userrepo persists customers. The orders foreign key has no cascade:
// deleting a user with orders left behind fails, so callers must delete the orders first.
package userrepo

import (
	"selfstorage/internal/adapters/out/postgres/orderrepo"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID      uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name    string               `gorm:"type:varchar(255);not null"`
	Phone   string               `gorm:"type:varchar(32);not null"`
	Address string               `gorm:"type:varchar(512)"`
	Orders  []orderrepo.OrderDTO `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName overrides GORM's default "user_dtos".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:      u.ID().Bytes(),
		Name:    u.Name(),
		Phone:   u.Phone(),
		Address: u.Address(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Phone, dto.Address)
}
