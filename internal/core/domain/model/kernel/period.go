package kernel

import (
	"errors"
	"fmt"
	"math"
	"time"

	"selfstorage/internal/pkg/guard"
)

const (
	// reminderLeadDays is how long before the end of a rental the customer is reminded.
	reminderLeadDays = 14

	// MaxRentalDays caps a single booking at ten years.
	MaxRentalDays = 3650
)

var (
	// ErrInvalidDuration is returned for rentals of zero or negative days and for
	// rentals longer than MaxRentalDays.
	ErrInvalidDuration = errors.New("storage duration must be between 1 and 3650 days")

	ErrRentalPeriodIsNotConstructed = errors.New("RentalPeriod must be created via NewRentalPeriod")
)

// RentalPeriod is the half-open interval [start, start+days) a unit is booked for.
// Start is normalized to UTC, so a calendar day is always 24 hours.
type RentalPeriod struct {
	start time.Time
	days  int

	guard guard.ConstructorGuard
}

// NewRentalPeriod validates that days is within [1, MaxRentalDays] and start is set.
func NewRentalPeriod(start time.Time, days int) (RentalPeriod, error) {
	if days <= 0 || days > MaxRentalDays {
		return RentalPeriod{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, days)
	}
	if start.IsZero() {
		return RentalPeriod{}, fmt.Errorf("rental start is required")
	}

	return RentalPeriod{
		start: start.UTC(),
		days:  days,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate rejects zero-value periods.
func (p RentalPeriod) Validate() error {
	return p.guard.Validate(ErrRentalPeriodIsNotConstructed)
}

func (p RentalPeriod) Start() time.Time {
	return p.start
}

func (p RentalPeriod) Days() int {
	return p.days
}

// End is the first instant no longer covered by the rental.
func (p RentalPeriod) End() time.Time {
	return p.start.AddDate(0, 0, p.days)
}

// Overlaps reports whether [s1, e1) and [s2, e2) intersect: s1 < e2 and s2 < e1.
// Touching intervals (one ends exactly when the other starts) do not overlap.
func (p RentalPeriod) Overlaps(other RentalPeriod) bool {
	return p.start.Before(other.End()) && other.start.Before(p.End())
}

// Contains reports whether start <= t < end.
func (p RentalPeriod) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.End())
}

// HasStarted reports whether start <= t.
func (p RentalPeriod) HasStarted(t time.Time) bool {
	return !t.Before(p.start)
}

// IsOver reports whether t is strictly after the end of the rental.
func (p RentalPeriod) IsOver(t time.Time) bool {
	return t.After(p.End())
}

// ReminderAt is when the customer should be told the rental is about to end:
// the start for rentals of up to 14 days, otherwise 14 days before the end.
// It never falls after End.
func (p RentalPeriod) ReminderAt() time.Time {
	if p.days <= reminderLeadDays {
		return p.start
	}
	return p.start.AddDate(0, 0, p.days-reminderLeadDays)
}

// DaysLeft is the number of whole days between t and the end, rounded down.
// It is negative once the rental is over.
func (p RentalPeriod) DaysLeft(t time.Time) int {
	return int(math.Floor(p.End().Sub(t).Hours() / 24))
}
