// Package queries holds the read side: projections built straight from SQL for
// display, bypassing the aggregates. Derived facts (cost, reminder time, expiry)
// are computed with the same domain functions the write side uses.
package queries

import (
	"database/sql"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/model/tariff"
	"selfstorage/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderView is the display projection of one order.
type OrderView struct {
	ID               kernel.UUID
	UserID           kernel.UUID
	UnitID           kernel.UUID
	Size             kernel.Size
	WarehouseName    string
	WarehouseAddress string
	Start            time.Time
	End              time.Time
	Days             int
	Status           order.Status
	Delivery         order.DeliveryMethod
	PickupAddress    string
	TotalCost        int64
	ReminderAt       time.Time
	IsExpired        bool
	DaysLeft         int
}

// orderViewColumns must stay in sync with scanOrderView.
const orderViewColumns = `
	o.id,
	o.user_id,
	o.unit_id,
	o.unit_size,
	w.name,
	w.address,
	o.starts_at,
	o.days,
	o.status,
	o.delivery_method,
	o.pickup_address
`

const orderViewFrom = `
	FROM orders o
	JOIN storage_units u ON u.id = o.unit_id
	JOIN warehouses w ON w.id = u.warehouse_id
`

func scanOrderView(rows *sql.Rows, rates tariff.RateTable, now time.Time) (OrderView, error) {
	var (
		view                   OrderView
		id, userID, unitID     uuid.UUID
		size, status, delivery string
		pickupAddress          sql.NullString
		warehouseAddress       sql.NullString
	)

	err := rows.Scan(
		&id,
		&userID,
		&unitID,
		&size,
		&view.WarehouseName,
		&warehouseAddress,
		&view.Start,
		&view.Days,
		&status,
		&delivery,
		&pickupAddress,
	)
	if err != nil {
		return OrderView{}, errs.NewStorageUnavailableError("scan order view", err)
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderView{}, err
	}
	if view.UnitID, err = kernel.UUIDFromBytes(unitID[:]); err != nil {
		return OrderView{}, err
	}
	if view.Size, err = kernel.ParseSize(size); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}
	if view.Delivery, err = order.ParseDeliveryMethod(delivery); err != nil {
		return OrderView{}, err
	}
	view.WarehouseAddress = warehouseAddress.String
	view.PickupAddress = pickupAddress.String

	period, err := kernel.NewRentalPeriod(view.Start, view.Days)
	if err != nil {
		return OrderView{}, err
	}
	view.Start = period.Start()
	view.End = period.End()
	view.ReminderAt = period.ReminderAt()
	view.IsExpired = period.IsOver(now)
	view.DaysLeft = period.DaysLeft(now)

	if view.TotalCost, err = rates.Cost(view.Size, view.Days); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
