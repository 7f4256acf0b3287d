// Package tariff holds the daily price list for storage units.
package tariff

import (
	"errors"
	"fmt"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"
	"selfstorage/internal/pkg/guard"
)

var ErrRateTableIsNotConstructed = errors.New("RateTable must be created via NewRateTable")

// RateTable maps every unit size to a positive daily rate in whole currency units.
// It is immutable once built and is passed to the code that prices orders.
type RateTable struct {
	rates map[kernel.Size]int64

	guard guard.ConstructorGuard
}

// NewRateTable requires a positive rate for each of kernel.AllSizes.
func NewRateTable(rates map[kernel.Size]int64) (RateTable, error) {
	var problems []error
	copied := make(map[kernel.Size]int64, len(rates))

	for size, rate := range rates {
		if err := size.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if rate <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"rate",
				fmt.Errorf("%s rate %d is not greater than 0", size, rate),
			))
			continue
		}
		copied[size] = rate
	}

	for _, size := range kernel.AllSizes() {
		if _, ok := rates[size]; !ok {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"rate",
				fmt.Errorf("no rate for %s units", size),
			))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return RateTable{}, err
	}

	return RateTable{rates: copied, guard: guard.NewConstructorGuard()}, nil
}

// DefaultRateTable is the standard price list: small 100, medium 300, large 500 per day.
func DefaultRateTable() RateTable {
	table, err := NewRateTable(map[kernel.Size]int64{
		kernel.Small:  100,
		kernel.Medium: 300,
		kernel.Large:  500,
	})
	if err != nil {
		panic(err)
	}
	return table
}

func (t RateTable) Validate() error {
	return t.guard.Validate(ErrRateTableIsNotConstructed)
}

// RateFor returns the daily rate of the size.
func (t RateTable) RateFor(size kernel.Size) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	rate, ok := t.rates[size]
	if !ok {
		return 0, size.Validate()
	}
	return rate, nil
}

// Cost is days multiplied by the daily rate of the size.
func (t RateTable) Cost(size kernel.Size, days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: got %d", kernel.ErrInvalidDuration, days)
	}
	rate, err := t.RateFor(size)
	if err != nil {
		return 0, err
	}
	return int64(days) * rate, nil
}

// Rates returns a copy of the table keyed by size.
func (t RateTable) Rates() map[kernel.Size]int64 {
	out := make(map[kernel.Size]int64, len(t.rates))
	for size, rate := range t.rates {
		out[size] = rate
	}
	return out
}
