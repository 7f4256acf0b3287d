package ports

import "context"

// UnitOfWorkFactory hands out a fresh UnitOfWork per command; instances are not shared.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the repositories of one business transaction.
//
// Without Begin every repository call runs in its own implicit transaction.
// After Begin they share one transaction until Commit or Rollback. Handlers
// defer Rollback unconditionally and ignore its error once Commit succeeded.
// Row locks taken with the *ForUpdate repository methods are held until then.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	StorageUnitRepository() StorageUnitRepository
	WarehouseRepository() WarehouseRepository
	UserRepository() UserRepository
}
