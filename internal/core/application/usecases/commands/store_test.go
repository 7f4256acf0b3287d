package commands_test

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/unit"
	"selfstorage/internal/core/domain/model/user"
	"selfstorage/internal/core/domain/model/warehouse"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/errs"
)

// memoryStore is an in-memory datastore with all-or-nothing transactions.
// Aggregates are copied on the way in and out, so uncommitted changes made by a
// handler never leak into the store.
type memoryStore struct {
	mu         sync.Mutex
	warehouses map[kernel.UUID]*warehouse.Warehouse
	units      map[kernel.UUID]*unit.StorageUnit
	orders     map[kernel.UUID]*order.Order
	users      map[kernel.UUID]*user.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		warehouses: map[kernel.UUID]*warehouse.Warehouse{},
		units:      map[kernel.UUID]*unit.StorageUnit{},
		orders:     map[kernel.UUID]*order.Order{},
		users:      map[kernel.UUID]*user.User{},
	}
}

func (s *memoryStore) ReservationFactory() commands.ReservationUoWFactory {
	return reservationFactory(func() commands.ReservationUoW { return &memoryUoW{store: s} })
}

func (s *memoryStore) WarehouseFactory() commands.WarehouseUoWFactory {
	return warehouseFactory(func() commands.WarehouseUoW { return &memoryUoW{store: s} })
}

type reservationFactory func() commands.ReservationUoW

func (f reservationFactory) Create() commands.ReservationUoW { return f() }

type warehouseFactory func() commands.WarehouseUoW

func (f warehouseFactory) Create() commands.WarehouseUoW { return f() }

func (s *memoryStore) unit(id kernel.UUID) *unit.StorageUnit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.units[id]; ok {
		return cloneUnit(u)
	}
	return nil
}

func (s *memoryStore) order(id kernel.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		return cloneOrder(o)
	}
	return nil
}

func (s *memoryStore) unitsOf(warehouseID kernel.UUID) []*unit.StorageUnit {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*unit.StorageUnit
	for _, u := range sortedUnits(s) {
		if u.WarehouseID().IsEqual(warehouseID) {
			out = append(out, cloneUnit(u))
		}
	}
	return out
}

func (s *memoryStore) hasUser(id kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok
}

func (s *memoryStore) user(id kernel.UUID) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u)
	}
	return nil
}

func (s *memoryStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type snapshot struct {
	warehouses map[kernel.UUID]*warehouse.Warehouse
	units      map[kernel.UUID]*unit.StorageUnit
	orders     map[kernel.UUID]*order.Order
	users      map[kernel.UUID]*user.User
}

// memoryUoW holds the store lock for the whole transaction, which serializes
// transactions the way a lock on every touched row would.
type memoryUoW struct {
	store  *memoryStore
	before *snapshot
}

func (u *memoryUoW) Begin(context.Context) error {
	if u.before != nil {
		return nil
	}
	u.store.mu.Lock()
	u.before = &snapshot{
		warehouses: maps.Clone(u.store.warehouses),
		units:      maps.Clone(u.store.units),
		orders:     maps.Clone(u.store.orders),
		users:      maps.Clone(u.store.users),
	}
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if u.before == nil {
		return errs.NewValueIsRequiredError("transaction")
	}
	u.before = nil
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if u.before == nil {
		return errs.NewValueIsRequiredError("transaction")
	}
	u.store.warehouses = u.before.warehouses
	u.store.units = u.before.units
	u.store.orders = u.before.orders
	u.store.users = u.before.users
	u.before = nil
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository             { return memoryOrders{u.store} }
func (u *memoryUoW) StorageUnitRepository() ports.StorageUnitRepository { return memoryUnits{u.store} }
func (u *memoryUoW) WarehouseRepository() ports.WarehouseRepository     { return memoryWarehouses{u.store} }
func (u *memoryUoW) UserRepository() ports.UserRepository               { return memoryUsers{u.store} }

type memoryOrders struct{ s *memoryStore }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.s.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.s.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	r.s.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r memoryOrders) MarkReminderSent(_ context.Context, id kernel.UUID, at time.Time) (bool, error) {
	o, ok := r.s.orders[id]
	if !ok || o.ReminderSentAt() != nil {
		return false, nil
	}
	stamped := cloneOrder(o)
	stamped.MarkReminderSent(at)
	r.s.orders[id] = stamped
	return true, nil
}

func (r memoryOrders) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.s.orders, id)
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return cloneOrder(o), nil
}

func (r memoryOrders) GetNonTerminalByUnit(_ context.Context, unitID kernel.UUID) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return !o.IsTerminal() && o.UnitID().IsEqual(unitID) }), nil
}

func (r memoryOrders) GetNonTerminal(context.Context) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return !o.IsTerminal() }), nil
}

func (r memoryOrders) GetByUser(_ context.Context, userID kernel.UUID) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool { return o.UserID().IsEqual(userID) }), nil
}

func (r memoryOrders) filter(keep func(*order.Order) bool) []*order.Order {
	var out []*order.Order
	for _, o := range r.s.orders {
		if keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	slices.SortFunc(out, func(a, b *order.Order) int {
		if c := a.Period().Start().Compare(b.Period().Start()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out
}

type memoryUnits struct{ s *memoryStore }

func (r memoryUnits) AddAll(_ context.Context, units []*unit.StorageUnit) error {
	for _, u := range units {
		r.s.units[u.ID()] = cloneUnit(u)
	}
	return nil
}

func (r memoryUnits) Update(_ context.Context, u *unit.StorageUnit) error {
	if _, ok := r.s.units[u.ID()]; !ok {
		return errs.NewObjectNotFoundError("storage unit", u.ID())
	}
	r.s.units[u.ID()] = cloneUnit(u)
	return nil
}

func (r memoryUnits) Get(_ context.Context, id kernel.UUID) (*unit.StorageUnit, error) {
	u, ok := r.s.units[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("storage unit", id)
	}
	return cloneUnit(u), nil
}

func (r memoryUnits) GetForUpdate(ctx context.Context, id kernel.UUID) (*unit.StorageUnit, error) {
	return r.Get(ctx, id)
}

func (r memoryUnits) GetManyForUpdate(_ context.Context, ids []kernel.UUID) ([]*unit.StorageUnit, error) {
	return r.filter(func(u *unit.StorageUnit) bool { return slices.ContainsFunc(ids, u.ID().IsEqual) }), nil
}

func (r memoryUnits) GetBySizeForUpdate(_ context.Context, size kernel.Size) ([]*unit.StorageUnit, error) {
	return r.filter(func(u *unit.StorageUnit) bool { return u.Size() == size }), nil
}

func (r memoryUnits) GetByWarehouse(_ context.Context, warehouseID kernel.UUID) ([]*unit.StorageUnit, error) {
	return r.filter(func(u *unit.StorageUnit) bool { return u.WarehouseID().IsEqual(warehouseID) }), nil
}

func (r memoryUnits) GetOccupied(context.Context) ([]*unit.StorageUnit, error) {
	return r.filter(func(u *unit.StorageUnit) bool { return u.IsOccupied() }), nil
}

func (r memoryUnits) filter(keep func(*unit.StorageUnit) bool) []*unit.StorageUnit {
	var out []*unit.StorageUnit
	for _, u := range sortedUnits(r.s) {
		if keep(u) {
			out = append(out, cloneUnit(u))
		}
	}
	return out
}

// sortedUnits returns units in registry order.
func sortedUnits(s *memoryStore) []*unit.StorageUnit {
	all := slices.Collect(maps.Values(s.units))
	warehouseCreated := func(u *unit.StorageUnit) time.Time {
		if w, ok := s.warehouses[u.WarehouseID()]; ok {
			return w.CreatedAt()
		}
		return time.Time{}
	}
	slices.SortFunc(all, func(a, b *unit.StorageUnit) int {
		if c := warehouseCreated(a).Compare(warehouseCreated(b)); c != 0 {
			return c
		}
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return all
}

type memoryWarehouses struct{ s *memoryStore }

func (r memoryWarehouses) Add(_ context.Context, w *warehouse.Warehouse) error {
	r.s.warehouses[w.ID()] = w
	return nil
}

func (r memoryWarehouses) Get(_ context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("warehouse", id)
	}
	return w, nil
}

func (r memoryWarehouses) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	return r.Get(ctx, id)
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) Add(_ context.Context, u *user.User) error {
	r.s.users[u.ID()] = cloneUser(u)
	return nil
}

func (r memoryUsers) Update(_ context.Context, u *user.User) error {
	r.s.users[u.ID()] = cloneUser(u)
	return nil
}

func (r memoryUsers) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return cloneUser(u), nil
}

func (r memoryUsers) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.s.users, id)
	return nil
}

func cloneOrder(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(o.ID(), o.UserID(), o.UnitID(), o.UnitSize(), o.CreatedAt(),
		o.Period(), o.Status(), o.Delivery(), o.ReminderSentAt())
	if err != nil {
		panic(err)
	}
	return c
}

func cloneUnit(u *unit.StorageUnit) *unit.StorageUnit {
	c, err := unit.RestoreStorageUnit(u.ID(), u.WarehouseID(), u.Size(), u.IsOccupied(), u.CreatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func cloneUser(u *user.User) *user.User {
	c, err := user.RestoreUser(u.ID(), u.Name(), u.Phone(), u.Address())
	if err != nil {
		panic(err)
	}
	return c
}
