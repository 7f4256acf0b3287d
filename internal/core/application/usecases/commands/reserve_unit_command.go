package commands

import (
	"errors"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/pkg/guard"
)

var ErrReserveUnitCommandIsNotConstructed = errors.New(
	"ReserveUnitCommand must be created via NewReserveUnitCommand constructor",
)

// ReserveUnitCommand books one specific unit for an existing user.
type ReserveUnitCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	userID   kernel.UUID
	unitID   kernel.UUID
	period   kernel.RentalPeriod
	delivery order.Delivery

	guard guard.ConstructorGuard
}

func NewReserveUnitCommand(
	orderID, userID, unitID kernel.UUID,
	start time.Time,
	days int,
	delivery order.Delivery,
) (ReserveUnitCommand, error) {
	cmd := ReserveUnitCommand{guard: guard.NewConstructorGuard()}

	period, periodErr := kernel.NewRentalPeriod(start, days)
	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
		unitID.Validate(),
		periodErr,
		delivery.Validate(),
	); err != nil {
		return ReserveUnitCommand{}, err
	}

	cmd.orderID = orderID
	cmd.userID = userID
	cmd.unitID = unitID
	cmd.period = period
	cmd.delivery = delivery
	return cmd, nil
}

func (c ReserveUnitCommand) Validate() error {
	return c.guard.Validate(ErrReserveUnitCommandIsNotConstructed)
}

func (c ReserveUnitCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReserveUnitCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ReserveUnitCommand) UnitID() kernel.UUID {
	return c.unitID
}

func (c ReserveUnitCommand) Period() kernel.RentalPeriod {
	return c.period
}

func (c ReserveUnitCommand) Delivery() order.Delivery {
	return c.delivery
}
