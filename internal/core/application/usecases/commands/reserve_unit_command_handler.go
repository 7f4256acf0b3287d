package commands

import (
	"context"

	"selfstorage/internal/core/domain/services"
	"selfstorage/internal/pkg/clock"
)

// ReserveUnitCommandHandler books a specific unit. The unit row stays locked from
// the overlap check until the order is committed.
type ReserveUnitCommandHandler struct {
	uowFactory ReservationUoWFactory
	allocator  services.UnitAllocator
	clock      clock.Clock
}

func NewReserveUnitCommandHandler(uowFactory ReservationUoWFactory, clk clock.Clock) ReserveUnitCommandHandler {
	return ReserveUnitCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewUnitAllocator(),
		clock:      clk,
	}
}

// Handle fails with services.ErrSchedulingConflict when the period overlaps a
// pending or active order of the unit.
func (h *ReserveUnitCommandHandler) Handle(ctx context.Context, cmd ReserveUnitCommand) error {
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

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return notFound(err, ErrUserNotFound, cmd.UserID())
	}

	unitRepo := uow.StorageUnitRepository()
	orderRepo := uow.OrderRepository()

	u, err := unitRepo.GetForUpdate(ctx, cmd.UnitID())
	if err != nil {
		return notFound(err, ErrUnitNotFound, cmd.UnitID())
	}

	existing, err := orderRepo.GetNonTerminalByUnit(ctx, u.ID())
	if err != nil {
		return err
	}

	created, err := h.allocator.Reserve(u, existing, cmd.OrderID(), cmd.UserID(), cmd.Period(), cmd.Delivery(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return err
	}

	if err = unitRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
