package commands

import (
	"context"

	"selfstorage/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler completes an order and re-syncs the occupancy of its unit.
type CompleteOrderCommandHandler struct {
	uowFactory ReservationUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory ReservationUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle fails with order.ErrOrderAlreadyCompleted on a second call for the same order.
// The unit is freed unless another pending or active order still holds it.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	unitRepo := uow.StorageUnitRepository()

	o, u, err := lockOrderUnit(ctx, orderRepo, unitRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	remaining, err := orderRepo.GetNonTerminalByUnit(ctx, u.ID())
	if err != nil {
		return err
	}

	changed, err := u.SyncOccupancy(without(remaining, o))
	if err != nil {
		return err
	}

	if changed {
		if err = unitRepo.Update(ctx, u); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// without drops o from orders by id.
func without(orders []*order.Order, o *order.Order) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, candidate := range orders {
		if !candidate.IsEqual(o) {
			out = append(out, candidate)
		}
	}
	return out
}
