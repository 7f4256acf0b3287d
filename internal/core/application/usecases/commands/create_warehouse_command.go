package commands

import (
	"errors"
	"strings"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"
	"selfstorage/internal/pkg/guard"
)

var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand registers a warehouse and seeds its storage units.
//
// Example:
//
//	cmd, err := NewCreateWarehouseCommand(kernel.NewUUID(), "North", "1 Dock Street")
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	name        string
	address     string

	guard guard.ConstructorGuard
}

func NewCreateWarehouseCommand(warehouseID kernel.UUID, name, address string) (CreateWarehouseCommand, error) {
	cmd := CreateWarehouseCommand{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWarehouseID(warehouseID),
		cmd.setName(name),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return cmd, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c CreateWarehouseCommand) Name() string {
	return c.name
}

func (c CreateWarehouseCommand) Address() string {
	return c.address
}

func (c *CreateWarehouseCommand) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.warehouseID = id
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	c.name = name
	return nil
}
