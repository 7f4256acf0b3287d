package queries

import (
	"errors"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/guard"
)

var ErrGetTariffsQueryIsNotConstructed = errors.New(
	"GetTariffsQuery must be created via NewGetTariffsQuery constructor",
)

// GetTariffsQuery lists the daily rate of every unit size along with how many
// units of that size are free right now.
type GetTariffsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTariffsQuery() GetTariffsQuery {
	return GetTariffsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTariffsQuery) Validate() error {
	return q.guard.Validate(ErrGetTariffsQueryIsNotConstructed)
}

type TariffView struct {
	Size      kernel.Size
	Label     string
	DailyRate int64
	FreeUnits int64
}
