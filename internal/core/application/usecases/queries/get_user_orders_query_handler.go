package queries

import (
	"context"

	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/tariff"
	"selfstorage/internal/pkg/clock"
	"selfstorage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a customer's orders together with their unit and warehouse.
type GetUserOrdersQueryHandler struct {
	db    *gorm.DB
	rates tariff.RateTable
	clock clock.Clock
}

func NewGetUserOrdersQueryHandler(db *gorm.DB, rates tariff.RateTable, clk clock.Clock) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db, rates: rates, clock: clk}
}

// Handle returns the orders newest rental first. An unknown user yields an empty list.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+orderViewFrom+`
		WHERE o.user_id = ? AND (? OR o.status <> ?)
		ORDER BY o.starts_at DESC, o.id
	`, query.UserID().Bytes(), query.IncludeCompleted(), order.Completed.String()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get user orders", err)
	}
	defer rows.Close()

	now := h.clock.Now()
	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows, h.rates, now)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("get user orders", err)
	}

	return views, nil
}
