// Package postgres implements the Unit of Work over GORM. Every repository handed
// out by a GormUnitOfWork runs on the transaction opened by Begin, so row locks taken
// through GetForUpdate and friends are held until Commit or Rollback.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	u, err := uow.StorageUnitRepository().GetForUpdate(ctx, unitID)
//	...
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"selfstorage/internal/adapters/out/postgres/orderrepo"
	"selfstorage/internal/adapters/out/postgres/pgerr"
	"selfstorage/internal/adapters/out/postgres/unitrepo"
	"selfstorage/internal/adapters/out/postgres/userrepo"
	"selfstorage/internal/adapters/out/postgres/warehouserepo"
	"selfstorage/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork. Instances are not safe for concurrent use;
// each request or sweep step creates its own.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Wrap("begin transaction", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return pgerr.Wrap("commit transaction", err)
	}

	return nil
}

// Rollback discards the transaction. After Commit it returns gorm.ErrInvalidTransaction,
// which handlers ignore in their deferred rollback.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) StorageUnitRepository() ports.StorageUnitRepository {
	return unitrepo.NewGormStorageUnitRepository(uow.conn())
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// conn is the open transaction, or the plain connection outside of Begin/Commit.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
