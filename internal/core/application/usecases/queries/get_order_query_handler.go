package queries

import (
	"context"

	"selfstorage/internal/core/domain/model/tariff"
	"selfstorage/internal/pkg/clock"
	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	rates tariff.RateTable
	clock clock.Clock
}

func NewGetOrderQueryHandler(db *gorm.DB, rates tariff.RateTable, clk clock.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, rates: rates, clock: clk}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+orderViewFrom+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, errs.NewStorageUnavailableError("get order", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, errs.NewStorageUnavailableError("get order", err)
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrderView(rows, h.rates, h.clock.Now())
}
