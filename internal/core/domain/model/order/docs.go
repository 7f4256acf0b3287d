// Package order implements the reservation lifecycle of a storage unit booking.
//
// The package includes:
//   - Order: the aggregate root holding the booked unit, the rental period and the status
//   - Status: the state machine (pending, active, expired, completed)
//   - Delivery: how the goods reach the warehouse (self or courier with a pickup address)
//
// Key business rules:
//   - The initial status is derived from the rental period and the current time
//   - Pending and active orders move forward with time; expired and completed do not
//   - Completion is explicit and can happen once
//   - Cost is the rented days times the daily rate of the unit size
//   - A reminder is due from start+max(days-14, 0) and is recorded once sent
package order
