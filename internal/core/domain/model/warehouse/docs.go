// Package warehouse contains the Warehouse aggregate.
package warehouse
