package commands

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrReleaseUnitCommandIsNotConstructed = errors.New(
	"ReleaseUnitCommand must be created via NewReleaseUnitCommand constructor",
)

// ReleaseUnitCommand frees the unit held by an order.
type ReleaseUnitCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReleaseUnitCommand(orderID kernel.UUID) (ReleaseUnitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReleaseUnitCommand{}, err
	}
	return ReleaseUnitCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReleaseUnitCommand) Validate() error {
	return c.guard.Validate(ErrReleaseUnitCommandIsNotConstructed)
}

func (c ReleaseUnitCommand) OrderID() kernel.UUID {
	return c.orderID
}
