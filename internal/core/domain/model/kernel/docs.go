// Package kernel provides the value objects shared by every aggregate of the
// self-storage domain.
//
// The package includes:
//   - UUID: identity of warehouses, storage units, orders and users
//   - Size: the storage unit size category (small, medium, large)
//   - RentalPeriod: a half-open rental interval [start, start+days) measured in whole days
//
// All value objects are immutable; their zero values are invalid and fail Validate.
package kernel
