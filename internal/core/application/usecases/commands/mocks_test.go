package commands_test

import (
	"context"
	"time"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/unit"
	"selfstorage/internal/core/domain/model/user"
	"selfstorage/internal/core/domain/model/warehouse"
	"selfstorage/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockReservationUoW struct{ mock.Mock }

func (m *MockReservationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockReservationUoW) StorageUnitRepository() ports.StorageUnitRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageUnitRepository)
}
func (m *MockReservationUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}
func (m *MockReservationUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockReservationUoWFactory struct{ mock.Mock }

func (m *MockReservationUoWFactory) Create() commands.ReservationUoW {
	args := m.Called()
	return args.Get(0).(commands.ReservationUoW)
}

type MockWarehouseUoW struct{ mock.Mock }

func (m *MockWarehouseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWarehouseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWarehouseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockWarehouseUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}
func (m *MockWarehouseUoW) StorageUnitRepository() ports.StorageUnitRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageUnitRepository)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, event ports.ReminderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*warehouse.Warehouse)
	return w, args.Error(1)
}
func (m *MockWarehouseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*warehouse.Warehouse)
	return w, args.Error(1)
}

type MockStorageUnitRepository struct{ mock.Mock }

func (m *MockStorageUnitRepository) AddAll(ctx context.Context, units []*unit.StorageUnit) error {
	args := m.Called(ctx, units)
	return args.Error(0)
}
func (m *MockStorageUnitRepository) Update(ctx context.Context, u *unit.StorageUnit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockStorageUnitRepository) Get(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*unit.StorageUnit)
	return u, args.Error(1)
}
func (m *MockStorageUnitRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*unit.StorageUnit)
	return u, args.Error(1)
}
func (m *MockStorageUnitRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*unit.StorageUnit, error) {
	args := m.Called(ctx, ids)
	units, _ := args.Get(0).([]*unit.StorageUnit)
	return units, args.Error(1)
}
func (m *MockStorageUnitRepository) GetBySizeForUpdate(ctx context.Context, size kernel.Size) ([]*unit.StorageUnit, error) {
	args := m.Called(ctx, size)
	units, _ := args.Get(0).([]*unit.StorageUnit)
	return units, args.Error(1)
}
func (m *MockStorageUnitRepository) GetByWarehouse(ctx context.Context, id kernel.UUID) ([]*unit.StorageUnit, error) {
	args := m.Called(ctx, id)
	units, _ := args.Get(0).([]*unit.StorageUnit)
	return units, args.Error(1)
}
func (m *MockStorageUnitRepository) GetOccupied(ctx context.Context) ([]*unit.StorageUnit, error) {
	args := m.Called(ctx)
	units, _ := args.Get(0).([]*unit.StorageUnit)
	return units, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) MarkReminderSent(ctx context.Context, id kernel.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetNonTerminalByUnit(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) GetNonTerminal(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) GetByUser(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}
func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
