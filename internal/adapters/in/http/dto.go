package http

import (
	"time"

	"selfstorage/internal/core/application/usecases/queries"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewWarehouse struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"max=500"`
}

type WarehouseCreated struct {
	ID string `json:"id"`
}

type UnitsProvisioned struct {
	Created int `json:"created"`
}

type Customer struct {
	// ID is optional; a new customer gets a generated one.
	ID      string `json:"id" validate:"omitempty,uuid"`
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Address string `json:"address" validate:"max=500"`
}

type Delivery struct {
	Method        string `json:"method" validate:"required,oneof=self courier"`
	PickupAddress string `json:"pickupAddress" validate:"required_if=Method courier,max=500"`
}

// NewOrder books any free unit of Size. Start may be a date (2006-01-02) or an
// RFC 3339 timestamp; an empty Start means now.
type NewOrder struct {
	Customer Customer `json:"customer"`
	Size     string   `json:"size" validate:"required,oneof=small medium large"`
	Start    string   `json:"start"`
	// Rental length, 1 to 3650 days.
	Days     int      `json:"days"`
	Delivery Delivery `json:"delivery"`
}

type OrderCreated struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

type NewReservation struct {
	UserID   string   `json:"userId" validate:"required,uuid"`
	Start    string   `json:"start"`
	// Rental length, 1 to 3650 days.
	Days     int      `json:"days"`
	Delivery Delivery `json:"delivery"`
}

type Released struct {
	Released bool `json:"released"`
}

type Order struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	UnitID           string    `json:"unitId"`
	Size             string    `json:"size"`
	SizeLabel        string    `json:"sizeLabel"`
	WarehouseName    string    `json:"warehouseName"`
	WarehouseAddress string    `json:"warehouseAddress"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Days             int       `json:"days"`
	Status           string    `json:"status"`
	Delivery         string    `json:"delivery"`
	PickupAddress    string    `json:"pickupAddress,omitempty"`
	TotalCost        int64     `json:"totalCost"`
	ReminderAt       time.Time `json:"reminderAt"`
	IsExpired        bool      `json:"isExpired"`
	DaysLeft         int       `json:"daysLeft"`
}

type Tariff struct {
	Size      string `json:"size"`
	Label     string `json:"label"`
	DailyRate int64  `json:"dailyRate"`
	FreeUnits int64  `json:"freeUnits"`
}

type FreeUnitCount struct {
	Size  string `json:"size"`
	Label string `json:"label"`
	Free  int64  `json:"free"`
}

type FreeUnits struct {
	Total  int64           `json:"total"`
	BySize []FreeUnitCount `json:"bySize"`
}

func toOrder(v queries.OrderView) Order {
	return Order{
		ID:               v.ID.String(),
		UserID:           v.UserID.String(),
		UnitID:           v.UnitID.String(),
		Size:             v.Size.String(),
		SizeLabel:        v.Size.Label(),
		WarehouseName:    v.WarehouseName,
		WarehouseAddress: v.WarehouseAddress,
		Start:            v.Start,
		End:              v.End,
		Days:             v.Days,
		Status:           v.Status.String(),
		Delivery:         v.Delivery.String(),
		PickupAddress:    v.PickupAddress,
		TotalCost:        v.TotalCost,
		ReminderAt:       v.ReminderAt,
		IsExpired:        v.IsExpired,
		DaysLeft:         v.DaysLeft,
	}
}
