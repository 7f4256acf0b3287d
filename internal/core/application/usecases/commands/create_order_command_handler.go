package commands

import (
	"context"
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/user"
	"selfstorage/internal/core/domain/services"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/clock"
	"selfstorage/internal/pkg/errs"
)

// CreateOrderCommandHandler books the first unit of the requested size that is free
// for the whole rental period.
//
// All units of the size are locked in registry order before their orders are read,
// so two concurrent bookings can never both pick the same unit.
type CreateOrderCommandHandler struct {
	uowFactory ReservationUoWFactory
	allocator  services.UnitAllocator
	clock      clock.Clock
}

func NewCreateOrderCommandHandler(uowFactory ReservationUoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewUnitAllocator(),
		clock:      clk,
	}
}

// Handle fails with services.ErrNoUnitsAvailable when every unit of the size is taken.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if err := saveCustomer(ctx, uow.UserRepository(), cmd.Customer()); err != nil {
		return err
	}

	unitRepo := uow.StorageUnitRepository()
	orderRepo := uow.OrderRepository()

	candidates, err := unitRepo.GetBySizeForUpdate(ctx, cmd.Size())
	if err != nil {
		return err
	}

	ordersByUnit := make(map[kernel.UUID][]*order.Order, len(candidates))
	for _, candidate := range candidates {
		orders, getErr := orderRepo.GetNonTerminalByUnit(ctx, candidate.ID())
		if getErr != nil {
			return getErr
		}
		ordersByUnit[candidate.ID()] = orders
	}

	chosen, err := h.allocator.Allocate(candidates, ordersByUnit, cmd.Period())
	if err != nil {
		return err
	}

	created, err := h.allocator.Reserve(
		chosen,
		ordersByUnit[chosen.ID()],
		cmd.OrderID(),
		cmd.Customer().ID,
		cmd.Period(),
		cmd.Delivery(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return err
	}

	if err = unitRepo.Update(ctx, chosen); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// saveCustomer creates the user on the first order and refreshes the contacts afterwards.
func saveCustomer(ctx context.Context, repo ports.UserRepository, customer Customer) error {
	existing, err := repo.Get(ctx, customer.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		created, newErr := user.NewUser(customer.ID, customer.Name, customer.Phone, customer.Address)
		if newErr != nil {
			return newErr
		}
		return repo.Add(ctx, created)
	}
	if err != nil {
		return err
	}

	if err = existing.UpdateContacts(customer.Name, customer.Phone, customer.Address); err != nil {
		return err
	}
	return repo.Update(ctx, existing)
}
