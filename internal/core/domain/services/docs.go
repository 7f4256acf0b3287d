// Package services provides domain services that work across the storage
// unit, order and warehouse aggregates.
//
// The package includes:
//   - UnitAllocator: overlap checks, unit selection and booking
//   - WarehouseProvisioner: seeding a new warehouse with two units of every size
package services
