// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"selfstorage/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StorageUnitRepoFactory interface {
		StorageUnitRepository() ports.StorageUnitRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// WarehouseUoW covers warehouse creation and unit provisioning.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
		StorageUnitRepoFactory
	}

	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// ReservationUoW covers every operation that books, completes or releases units.
	// Units are always locked before their orders are read. The warehouse repository
	// is read-only here; the sweep uses it for the address in reminders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   u, err := uow.StorageUnitRepository().GetForUpdate(ctx, unitID)
	//   orders, err := uow.OrderRepository().GetNonTerminalByUnit(ctx, unitID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ReservationUoW interface {
		TxManager
		OrderRepoFactory
		StorageUnitRepoFactory
		WarehouseRepoFactory
		UserRepoFactory
	}

	ReservationUoWFactory interface {
		Create() ReservationUoW
	}
)
