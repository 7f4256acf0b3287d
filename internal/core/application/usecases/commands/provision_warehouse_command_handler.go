package commands

import (
	"context"

	"selfstorage/internal/core/domain/services"
	"selfstorage/internal/pkg/clock"
)

// ProvisionWarehouseCommandHandler re-runs unit provisioning. The warehouse row is
// locked while its units are counted, so concurrent runs create units at most once.
type ProvisionWarehouseCommandHandler struct {
	uowFactory  WarehouseUoWFactory
	provisioner services.WarehouseProvisioner
	clock       clock.Clock
}

func NewProvisionWarehouseCommandHandler(uowFactory WarehouseUoWFactory, clk clock.Clock) ProvisionWarehouseCommandHandler {
	return ProvisionWarehouseCommandHandler{
		uowFactory:  uowFactory,
		provisioner: services.NewWarehouseProvisioner(),
		clock:       clk,
	}
}

// Handle returns the number of units created: 6 for an empty warehouse, 0 otherwise.
func (h *ProvisionWarehouseCommandHandler) Handle(ctx context.Context, cmd ProvisionWarehouseCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	w, err := uow.WarehouseRepository().GetForUpdate(ctx, cmd.WarehouseID())
	if err != nil {
		return 0, notFound(err, ErrWarehouseNotFound, cmd.WarehouseID())
	}

	unitRepo := uow.StorageUnitRepository()
	existing, err := unitRepo.GetByWarehouse(ctx, w.ID())
	if err != nil {
		return 0, err
	}

	units, err := h.provisioner.Provision(w, existing, h.clock.Now())
	if err != nil {
		return 0, err
	}
	if len(units) == 0 {
		return 0, nil
	}

	if err = unitRepo.AddAll(ctx, units); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(units), nil
}
