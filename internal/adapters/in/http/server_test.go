package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "selfstorage/internal/adapters/in/http"
	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/application/usecases/queries"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/services"
	"selfstorage/internal/pkg/clock"
	"selfstorage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockReserveUnitHandler struct {
	mock.Mock
}

func (m *MockReserveUnitHandler) Handle(ctx context.Context, cmd commands.ReserveUnitCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCompleteOrderHandler struct {
	mock.Mock
}

func (m *MockCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockReleaseUnitHandler struct {
	mock.Mock
}

func (m *MockReleaseUnitHandler) Handle(ctx context.Context, cmd commands.ReleaseUnitCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

type MockCreateWarehouseHandler struct {
	mock.Mock
}

func (m *MockCreateWarehouseHandler) Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteUserHandler struct {
	mock.Mock
}

func (m *MockDeleteUserHandler) Handle(ctx context.Context, cmd commands.DeleteUserCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetUserOrdersHandler struct {
	mock.Mock
}

func (m *MockGetUserOrdersHandler) Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockGetFreeUnitCountsHandler struct {
	mock.Mock
}

func (m *MockGetFreeUnitCountsHandler) Handle(
	ctx context.Context,
	query queries.GetFreeUnitCountsQuery,
) (queries.FreeUnitCounts, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.FreeUnitCounts), args.Error(1)
}

func newEcho(handlers httpadapter.Handlers) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(handlers, clock.NewManual(now), logger)
	return httpadapter.NewEcho(server, logger, 5*time.Second)
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.Error {
	t.Helper()
	var body httpadapter.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, rec.Code, body.Code)
	return body
}

const validOrder = `{
	"customer": {"name": "Anna", "phone": "+70000000000"},
	"size": "medium",
	"start": "2025-03-10",
	"days": 30,
	"delivery": {"method": "self"}
}`

func TestCreateOrder_Success(t *testing.T) {
	handler := new(MockCreateOrderHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.Size() == kernel.Medium &&
			cmd.Period().Days() == 30 &&
			cmd.Period().Start().Equal(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)) &&
			cmd.Delivery().Method() == order.SelfDelivery &&
			cmd.Customer().Name == "Anna"
	})).Return(nil).Once()

	rec := do(newEcho(httpadapter.Handlers{CreateOrder: handler}), http.MethodPost, "/api/v1/orders", validOrder)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body httpadapter.OrderCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, err := kernel.UUIDFromString(body.OrderID)
	require.NoError(t, err)
	_, err = kernel.UUIDFromString(body.UserID)
	require.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestCreateOrder_KeepsCustomerIDAndDefaultsStartToNow(t *testing.T) {
	customerID := kernel.NewUUID()
	handler := new(MockCreateOrderHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.Customer().ID.IsEqual(customerID) && cmd.Period().Start().Equal(now)
	})).Return(nil).Once()

	body := fmt.Sprintf(`{
		"customer": {"id": %q, "name": "Anna", "phone": "+70000000000"},
		"size": "small",
		"days": 7,
		"delivery": {"method": "courier", "pickupAddress": "5 Harbour Lane"}
	}`, customerID.String())
	rec := do(newEcho(httpadapter.Handlers{CreateOrder: handler}), http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), customerID.String())
	handler.AssertExpectations(t)
}

func TestCreateOrder_RejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing phone",
			body:    `{"customer": {"name": "Anna"}, "size": "small", "days": 5, "delivery": {"method": "self"}}`,
			message: "customer.phone is required",
		},
		{
			name:    "courier without address",
			body:    `{"customer": {"name": "Anna", "phone": "1"}, "size": "small", "days": 5, "delivery": {"method": "courier"}}`,
			message: "delivery.pickupAddress is required",
		},
		{
			name:    "unknown size",
			body:    `{"customer": {"name": "Anna", "phone": "1"}, "size": "huge", "days": 5, "delivery": {"method": "self"}}`,
			message: "size must be one of small medium large",
		},
		{
			name:    "zero days",
			body:    `{"customer": {"name": "Anna", "phone": "1"}, "size": "small", "days": 0, "delivery": {"method": "self"}}`,
			message: "Storage duration must be between 1 and 3650 days",
		},
		{
			name:    "more than ten years",
			body:    `{"customer": {"name": "Anna", "phone": "1"}, "size": "small", "days": 200000, "delivery": {"method": "self"}}`,
			message: "Storage duration must be between 1 and 3650 days",
		},
		{
			name:    "bad start",
			body:    `{"customer": {"name": "Anna", "phone": "1"}, "size": "small", "start": "tomorrow", "days": 5, "delivery": {"method": "self"}}`,
			message: "Start must be a date",
		},
		{
			name:    "malformed json",
			body:    `{"customer":`,
			message: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := new(MockCreateOrderHandler)

			rec := do(newEcho(httpadapter.Handlers{CreateOrder: handler}), http.MethodPost, "/api/v1/orders", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Message, tt.message)
			handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrder_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"no units", services.ErrNoUnitsAvailable, http.StatusConflict, "No free units of this size"},
		{"storage down", errs.NewStorageUnavailableError("lock units", context.DeadlineExceeded), http.StatusServiceUnavailable, "temporarily unavailable"},
		{"customer saved concurrently", errs.NewObjectAlreadyExistsError("add user", nil), http.StatusConflict, "concurrent request"},
		{"dangling reference", errs.NewRelationViolatedError("add order", nil), http.StatusConflict, "related records"},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := new(MockCreateOrderHandler)
			handler.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := do(newEcho(httpadapter.Handlers{CreateOrder: handler}), http.MethodPost, "/api/v1/orders", validOrder)

			require.Equal(t, tt.code, rec.Code)
			assert.Contains(t, decodeError(t, rec).Message, tt.message)
		})
	}
}

func TestReserveUnit_SchedulingConflict(t *testing.T) {
	unitID, userID := kernel.NewUUID(), kernel.NewUUID()
	handler := new(MockReserveUnitHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ReserveUnitCommand) bool {
		return cmd.UnitID().IsEqual(unitID) && cmd.UserID().IsEqual(userID)
	})).Return(fmt.Errorf("reserve: %w", services.ErrSchedulingConflict)).Once()

	body := fmt.Sprintf(`{"userId": %q, "start": "2025-03-10T12:00:00+03:00", "days": 3, "delivery": {"method": "self"}}`, userID)
	rec := do(newEcho(httpadapter.Handlers{ReserveUnit: handler}), http.MethodPost, "/api/v1/units/"+unitID.String()+"/orders", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "This unit is already booked for the requested dates", decodeError(t, rec).Message)
	handler.AssertExpectations(t)
}

func TestReserveUnit_InvalidUnitID(t *testing.T) {
	rec := do(newEcho(httpadapter.Handlers{}), http.MethodPost, "/api/v1/units/42/orders", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid unit id", decodeError(t, rec).Message)
}

func TestCompleteOrder(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"picked up", nil, http.StatusNoContent},
		{"already completed", order.ErrOrderAlreadyCompleted, http.StatusConflict},
		{"missing", fmt.Errorf("%w: x", commands.ErrOrderNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := kernel.NewUUID()
			handler := new(MockCompleteOrderHandler)
			handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CompleteOrderCommand) bool {
				return cmd.OrderID().IsEqual(orderID)
			})).Return(tt.err).Once()

			rec := do(newEcho(httpadapter.Handlers{CompleteOrder: handler}), http.MethodPost,
				"/api/v1/orders/"+orderID.String()+"/complete", "")

			assert.Equal(t, tt.code, rec.Code)
			handler.AssertExpectations(t)
		})
	}
}

func TestReleaseUnit_FreeUnitIsNoop(t *testing.T) {
	handler := new(MockReleaseUnitHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(false, nil).Once()

	rec := do(newEcho(httpadapter.Handlers{ReleaseUnit: handler}), http.MethodPost,
		"/api/v1/orders/"+kernel.NewUUID().String()+"/release", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"released": false}`, rec.Body.String())
}

func TestCreateWarehouse(t *testing.T) {
	handler := new(MockCreateWarehouseHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateWarehouseCommand) bool {
		return cmd.Name() == "Central" && cmd.Address() == "1 Dock Road"
	})).Return(nil).Once()
	e := newEcho(httpadapter.Handlers{CreateWarehouse: handler})

	rec := do(e, http.MethodPost, "/api/v1/warehouses", `{"name": "Central", "address": "1 Dock Road"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	handler.AssertExpectations(t)

	rec = do(e, http.MethodPost, "/api/v1/warehouses", `{"address": "nowhere"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request: name is required", decodeError(t, rec).Message)
}

func TestDeleteUser(t *testing.T) {
	userID := kernel.NewUUID()
	handler := new(MockDeleteUserHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteUserCommand) bool {
		return cmd.UserID().IsEqual(userID)
	})).Return(nil).Once()

	rec := do(newEcho(httpadapter.Handlers{DeleteUser: handler}), http.MethodDelete, "/api/v1/users/"+userID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	handler.AssertExpectations(t)
}

func TestGetUserOrders(t *testing.T) {
	userID := kernel.NewUUID()
	view := queries.OrderView{
		ID:            kernel.NewUUID(),
		UserID:        userID,
		UnitID:        kernel.NewUUID(),
		Size:          kernel.Large,
		WarehouseName: "Central",
		Start:         now,
		End:           now.Add(10 * 24 * time.Hour),
		Days:          10,
		Status:        order.Active,
		Delivery:      order.SelfDelivery,
		TotalCost:     5000,
		ReminderAt:    now,
		DaysLeft:      10,
	}
	handler := new(MockGetUserOrdersHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetUserOrdersQuery) bool {
		return q.UserID().IsEqual(userID) && q.IncludeCompleted()
	})).Return([]queries.OrderView{view}, nil).Once()
	e := newEcho(httpadapter.Handlers{GetUserOrders: handler})

	rec := do(e, http.MethodGet, "/api/v1/users/"+userID.String()+"/orders?all=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []httpadapter.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "large", body[0].Size)
	assert.Equal(t, "Large (over 5 m³)", body[0].SizeLabel)
	assert.Equal(t, "active", body[0].Status)
	assert.Equal(t, "self", body[0].Delivery)
	assert.Equal(t, int64(5000), body[0].TotalCost)
	handler.AssertExpectations(t)

	rec = do(e, http.MethodGet, "/api/v1/users/"+userID.String()+"/orders?all=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFreeUnits(t *testing.T) {
	warehouseID := kernel.NewUUID()
	handler := new(MockGetFreeUnitCountsHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetFreeUnitCountsQuery) bool {
		return q.WarehouseID() != nil && q.WarehouseID().IsEqual(warehouseID)
	})).Return(queries.FreeUnitCounts{
		Total: 3,
		BySize: []queries.FreeUnitCount{
			{Size: kernel.Small, Free: 2},
			{Size: kernel.Medium, Free: 1},
			{Size: kernel.Large, Free: 0},
		},
	}, nil).Once()
	e := newEcho(httpadapter.Handlers{GetFreeUnitCounts: handler})

	rec := do(e, http.MethodGet, "/api/v1/units/free?warehouseId="+warehouseID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body httpadapter.FreeUnits
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Total)
	assert.Equal(t, httpadapter.FreeUnitCount{Size: "small", Label: "Small (up to 1 m³)", Free: 2}, body.BySize[0])

	rec = do(e, http.MethodGet, "/api/v1/units/free?warehouseId=nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newEcho(httpadapter.Handlers{})

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = do(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "selfstorage_orders_completed_total")
}
