package warehouse

import (
	"errors"
	"strings"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"
	"selfstorage/internal/pkg/guard"
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse")

// Warehouse is a physical site that owns a fixed set of storage units.
// The units themselves are separate aggregates that reference the warehouse;
// see services.WarehouseProvisioner for how they are seeded.
type Warehouse struct {
	id        kernel.UUID
	name      string
	address   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewWarehouse creates a warehouse. The name is required, the address may be empty.
func NewWarehouse(id kernel.UUID, name, address string, createdAt time.Time) (*Warehouse, error) {
	return RestoreWarehouse(id, name, address, createdAt)
}

// RestoreWarehouse reconstructs a warehouse loaded from storage.
func RestoreWarehouse(id kernel.UUID, name, address string, createdAt time.Time) (*Warehouse, error) {
	w := &Warehouse{
		address:   strings.TrimSpace(address),
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Name() string {
	return w.name
}

func (w *Warehouse) Address() string {
	return w.address
}

func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	w.name = name
	return nil
}
