package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"
)

// ErrOrderAlreadyCompleted is returned when a completed order is completed again.
var ErrOrderAlreadyCompleted = errors.New("order is already completed")

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Active ──> Expired      (time driven, see ForPeriod)
//	   │          │
//	   └──────────┴──────> Completed    (pickup, see Complete)
//
// Completed and Expired are terminal for the time driven transitions.
// Completed is terminal for everything.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending orders start in the future.
	Pending

	// Active orders cover the current instant.
	Active

	// Expired orders ended without being picked up.
	Expired

	// Completed orders were picked up by the customer.
	Completed
)

var statusCodes = map[Status]string{
	Pending:   "pending",
	Active:    "active",
	Expired:   "expired",
	Completed: "completed",
}

// ForPeriod is the time driven transition function: pending if the rental
// starts after now, active while now is inside [start, end), expired afterwards.
func ForPeriod(period kernel.RentalPeriod, now time.Time) Status {
	switch {
	case period.Start().After(now):
		return Pending
	case now.Before(period.End()):
		return Active
	default:
		return Expired
	}
}

// ParseStatus maps a persisted code back to a Status.
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for status, c := range statusCodes {
		if c == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return "unknown"
}

// IsTerminal reports whether time can no longer move the order: Completed or Expired.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Expired
}

// Refresh re-evaluates a non-terminal status against the period. Terminal statuses
// are returned unchanged.
func (s Status) Refresh(period kernel.RentalPeriod, now time.Time) Status {
	if s.IsTerminal() {
		return s
	}
	return ForPeriod(period, now)
}

// Complete returns Completed for any valid status except Completed itself.
// Expired orders can still be picked up.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Completed {
		return Unknown, ErrOrderAlreadyCompleted
	}
	return Completed, nil
}
