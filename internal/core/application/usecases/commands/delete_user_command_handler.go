package commands

import (
	"context"
	"slices"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
)

// DeleteUserCommandHandler runs the user cascade in one transaction:
// release the units held by the user's orders, delete the orders, delete the user.
type DeleteUserCommandHandler struct {
	uowFactory ReservationUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory ReservationUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	userRepo := uow.UserRepository()
	orderRepo := uow.OrderRepository()
	unitRepo := uow.StorageUnitRepository()

	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return notFound(err, ErrUserNotFound, cmd.UserID())
	}

	owned, err := orderRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	unitIDs := make([]kernel.UUID, 0, len(owned))
	for _, o := range owned {
		if !slices.ContainsFunc(unitIDs, o.UnitID().IsEqual) {
			unitIDs = append(unitIDs, o.UnitID())
		}
	}

	units, err := unitRepo.GetManyForUpdate(ctx, unitIDs)
	if err != nil {
		return err
	}

	for _, u := range units {
		running, getErr := orderRepo.GetNonTerminalByUnit(ctx, u.ID())
		if getErr != nil {
			return getErr
		}

		changed, syncErr := u.SyncOccupancy(slices.DeleteFunc(running, func(o *order.Order) bool {
			return o.UserID().IsEqual(cmd.UserID())
		}))
		if syncErr != nil {
			return syncErr
		}

		if changed {
			if err = unitRepo.Update(ctx, u); err != nil {
				return err
			}
		}
	}

	for _, o := range owned {
		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return err
		}
	}

	if err = userRepo.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
