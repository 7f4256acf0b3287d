package commands

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrProvisionWarehouseCommandIsNotConstructed = errors.New(
	"ProvisionWarehouseCommand must be created via NewProvisionWarehouseCommand constructor",
)

// ProvisionWarehouseCommand seeds the units of an existing warehouse if it has none.
type ProvisionWarehouseCommand struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewProvisionWarehouseCommand(warehouseID kernel.UUID) (ProvisionWarehouseCommand, error) {
	if err := warehouseID.Validate(); err != nil {
		return ProvisionWarehouseCommand{}, err
	}
	return ProvisionWarehouseCommand{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (c ProvisionWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrProvisionWarehouseCommandIsNotConstructed)
}

func (c ProvisionWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}
