package queries

import (
	"context"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/tariff"

	"gorm.io/gorm"
)

type GetTariffsQueryHandler struct {
	db    *gorm.DB
	rates tariff.RateTable
}

func NewGetTariffsQueryHandler(db *gorm.DB, rates tariff.RateTable) GetTariffsQueryHandler {
	return GetTariffsQueryHandler{db: db, rates: rates}
}

// Handle returns one row per size, smallest first. Sizes without units report zero free.
func (h GetTariffsQueryHandler) Handle(ctx context.Context, query GetTariffsQuery) ([]TariffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	free, err := countFree(ctx, h.db, nil)
	if err != nil {
		return nil, err
	}

	tariffs := make([]TariffView, 0, len(kernel.AllSizes()))
	for _, size := range kernel.AllSizes() {
		rate, rateErr := h.rates.RateFor(size)
		if rateErr != nil {
			return nil, rateErr
		}

		tariffs = append(tariffs, TariffView{
			Size:      size,
			Label:     size.Label(),
			DailyRate: rate,
			FreeUnits: free[size],
		})
	}

	return tariffs, nil
}
