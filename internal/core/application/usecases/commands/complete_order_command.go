package commands

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand records that the customer picked up the goods.
type CompleteOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
