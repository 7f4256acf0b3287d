package commands

import (
	"context"

	"selfstorage/internal/core/domain/model/warehouse"
	"selfstorage/internal/core/domain/services"
	"selfstorage/internal/pkg/clock"
)

// CreateWarehouseCommandHandler stores a new warehouse together with its
// two small, two medium and two large units in one transaction.
type CreateWarehouseCommandHandler struct {
	uowFactory  WarehouseUoWFactory
	provisioner services.WarehouseProvisioner
	clock       clock.Clock
}

func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory, clk clock.Clock) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory:  uowFactory,
		provisioner: services.NewWarehouseProvisioner(),
		clock:       clk,
	}
}

func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	w, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Name(), cmd.Address(), now)
	if err != nil {
		return err
	}

	units, err := h.provisioner.Provision(w, nil, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return err
	}

	if err = uow.StorageUnitRepository().AddAll(ctx, units); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
