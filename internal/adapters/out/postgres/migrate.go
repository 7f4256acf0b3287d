package postgres

import (
	"selfstorage/internal/adapters/out/postgres/orderrepo"
	"selfstorage/internal/adapters/out/postgres/unitrepo"
	"selfstorage/internal/adapters/out/postgres/userrepo"
	"selfstorage/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&warehouserepo.WarehouseDTO{},
		&unitrepo.StorageUnitDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
	}
}

// Migrate creates or updates the schema, including the foreign keys declared on the DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
