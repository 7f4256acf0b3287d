package commands

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/unit"
	"selfstorage/internal/core/ports"
)

// ReleaseUnitCommandHandler recomputes the occupancy of the order's unit while
// ignoring the order itself. The order is left untouched.
//
// Releasing is idempotent: a free unit, or one that is already released for this
// order, is not written again.
type ReleaseUnitCommandHandler struct {
	uowFactory ReservationUoWFactory
}

func NewReleaseUnitCommandHandler(uowFactory ReservationUoWFactory) ReleaseUnitCommandHandler {
	return ReleaseUnitCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether the unit flag changed.
func (h *ReleaseUnitCommandHandler) Handle(ctx context.Context, cmd ReleaseUnitCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	unitRepo := uow.StorageUnitRepository()

	o, u, err := lockOrderUnit(ctx, orderRepo, unitRepo, cmd.OrderID())
	if err != nil {
		return false, err
	}

	orders, err := orderRepo.GetNonTerminalByUnit(ctx, u.ID())
	if err != nil {
		return false, err
	}

	changed, err := u.Release(o.ID(), orders)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err = unitRepo.Update(ctx, u); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// lockOrderUnit locks the unit of the order and returns the order as read after the lock,
// so a concurrent change to it cannot be missed.
func lockOrderUnit(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	unitRepo ports.StorageUnitRepository,
	orderID kernel.UUID,
) (*order.Order, *unit.StorageUnit, error) {
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, nil, notFound(err, ErrOrderNotFound, orderID)
	}

	u, err := unitRepo.GetForUpdate(ctx, o.UnitID())
	if err != nil {
		return nil, nil, notFound(err, ErrUnitNotFound, o.UnitID())
	}

	o, err = orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, nil, notFound(err, ErrOrderNotFound, orderID)
	}

	return o, u, nil
}
