// Package unit contains the StorageUnit aggregate of the unit registry.
//
// A unit belongs to exactly one warehouse for its whole life and has a fixed size.
// Its occupancy is never written directly: it is derived from the unit's orders
// inside the same transaction that changes them.
package unit
