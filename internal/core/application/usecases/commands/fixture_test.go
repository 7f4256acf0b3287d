package commands_test

import (
	"testing"
	"time"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/unit"
	"selfstorage/internal/core/domain/model/warehouse"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var epoch = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

type fixture struct {
	t     *testing.T
	store *memoryStore
	clock *clock.Manual
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, store: newMemoryStore(), clock: clock.NewManual(epoch)}
}

// warehouse creates a provisioned warehouse and returns its units in registry order.
func (f *fixture) warehouse(name string) []*unit.StorageUnit {
	f.t.Helper()
	return f.warehouseAt(name, "")
}

func (f *fixture) warehouseAt(name, address string) []*unit.StorageUnit {
	f.t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(id, name, address)
	require.NoError(f.t, err)

	h := commands.NewCreateWarehouseCommandHandler(f.store.WarehouseFactory(), f.clock)
	require.NoError(f.t, h.Handle(f.t.Context(), cmd))

	return f.store.unitsOf(id)
}

func (f *fixture) customer() commands.Customer {
	return commands.Customer{ID: kernel.NewUUID(), Name: "Ivan", Phone: "+7 999 123-45-67"}
}

// book runs CreateOrderCommand and returns the new order id.
func (f *fixture) book(customer commands.Customer, size kernel.Size, start time.Time, days int) (kernel.UUID, error) {
	f.t.Helper()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customer, size, start, days, order.NewSelfDelivery())
	require.NoError(f.t, err)

	h := commands.NewCreateOrderCommandHandler(f.store.ReservationFactory(), f.clock)
	return orderID, h.Handle(f.t.Context(), cmd)
}

func (f *fixture) reserve(userID, unitID kernel.UUID, start time.Time, days int) (kernel.UUID, error) {
	f.t.Helper()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewReserveUnitCommand(orderID, userID, unitID, start, days, order.NewSelfDelivery())
	require.NoError(f.t, err)

	h := commands.NewReserveUnitCommandHandler(f.store.ReservationFactory(), f.clock)
	return orderID, h.Handle(f.t.Context(), cmd)
}

func (f *fixture) complete(orderID kernel.UUID) error {
	f.t.Helper()
	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(f.t, err)

	h := commands.NewCompleteOrderCommandHandler(f.store.ReservationFactory())
	return h.Handle(f.t.Context(), cmd)
}

func (f *fixture) sweep(notifier ports.Notifier) (commands.SweepReport, error) {
	f.t.Helper()
	h := commands.NewSweepOrdersCommandHandler(f.store.ReservationFactory(), notifier, f.clock)
	return h.Handle(f.t.Context(), commands.NewSweepOrdersCommand())
}

// unitOf returns the stored unit of the stored order.
func (f *fixture) unitOf(orderID kernel.UUID) *unit.StorageUnit {
	f.t.Helper()
	o := f.store.order(orderID)
	require.NotNil(f.t, o)
	return f.store.unit(o.UnitID())
}

func newWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Central", "", epoch)
	require.NoError(t, err)
	return w
}

func newStoredUnit(t *testing.T, size kernel.Size, occupied bool) *unit.StorageUnit {
	t.Helper()
	u, err := unit.RestoreStorageUnit(kernel.NewUUID(), kernel.NewUUID(), size, occupied, epoch)
	require.NoError(t, err)
	return u
}
