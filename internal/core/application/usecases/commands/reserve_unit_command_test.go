package commands_test

import (
	"testing"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReserveUnitCommand(t *testing.T) {
	_, err := commands.NewReserveUnitCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), epoch, 0, order.NewSelfDelivery())
	require.ErrorIs(t, err, kernel.ErrInvalidDuration)

	courier, _ := order.NewDelivery(order.CourierDelivery, "Lenina 1")
	cmd, err := commands.NewReserveUnitCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), epoch, 7, courier)
	require.NoError(t, err)
	assert.Equal(t, "Lenina 1", cmd.Delivery().PickupAddress())

	require.ErrorIs(t, commands.ReserveUnitCommand{}.Validate(), commands.ErrReserveUnitCommandIsNotConstructed)
}

func TestReserveUnitCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T) (*fixture, commands.Customer, kernel.UUID) {
		f := newFixture(t)
		units := f.warehouse("Central")
		customer := f.customer()
		_, err := f.book(customer, kernel.Large, epoch.AddDate(1, 0, 0), 1)
		require.NoError(t, err)
		return f, customer, units[0].ID()
	}

	t.Run("should reject an overlapping booking of the same unit", func(t *testing.T) {
		f, customer, unitID := setup(t)

		first, err := f.reserve(customer.ID, unitID, epoch, 30)
		require.NoError(t, err)

		_, err = f.reserve(customer.ID, unitID, epoch.Add(29*day), 5)

		require.ErrorIs(t, err, services.ErrSchedulingConflict)
		assert.Equal(t, order.Active, f.store.order(first).Status())
		assert.Equal(t, 2, f.store.orderCount())
	})

	t.Run("should accept back to back bookings", func(t *testing.T) {
		f, customer, unitID := setup(t)

		_, err := f.reserve(customer.ID, unitID, epoch, 30)
		require.NoError(t, err)

		next, err := f.reserve(customer.ID, unitID, epoch.Add(30*day), 5)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, f.store.order(next).Status())
	})

	t.Run("should book a past period as expired without occupying the unit", func(t *testing.T) {
		f, customer, unitID := setup(t)

		id, err := f.reserve(customer.ID, unitID, epoch.Add(-40*day), 10)

		require.NoError(t, err)
		assert.Equal(t, order.Expired, f.store.order(id).Status())
		assert.False(t, f.store.unit(unitID).IsOccupied())
	})

	t.Run("should fail for unknown unit", func(t *testing.T) {
		f, customer, _ := setup(t)

		_, err := f.reserve(customer.ID, kernel.NewUUID(), epoch, 1)

		require.ErrorIs(t, err, commands.ErrUnitNotFound)
	})

	t.Run("should fail for unknown user", func(t *testing.T) {
		f, _, unitID := setup(t)

		_, err := f.reserve(kernel.NewUUID(), unitID, epoch, 1)

		require.ErrorIs(t, err, commands.ErrUserNotFound)
		assert.False(t, f.store.unit(unitID).IsOccupied())
	})
}
