package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/application/usecases/queries"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/metrics"
	"selfstorage/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateWarehouseHandler interface {
		Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error
	}
	ProvisionWarehouseHandler interface {
		Handle(ctx context.Context, cmd commands.ProvisionWarehouseCommand) (int, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ReserveUnitHandler interface {
		Handle(ctx context.Context, cmd commands.ReserveUnitCommand) error
	}
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}
	ReleaseUnitHandler interface {
		Handle(ctx context.Context, cmd commands.ReleaseUnitCommand) (bool, error)
	}
	DeleteUserHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteUserCommand) error
	}

	GetUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	GetTariffsHandler interface {
		Handle(ctx context.Context, query queries.GetTariffsQuery) ([]queries.TariffView, error)
	}
	GetFreeUnitCountsHandler interface {
		Handle(ctx context.Context, query queries.GetFreeUnitCountsQuery) (queries.FreeUnitCounts, error)
	}
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateWarehouse    CreateWarehouseHandler
	ProvisionWarehouse ProvisionWarehouseHandler
	CreateOrder        CreateOrderHandler
	ReserveUnit        ReserveUnitHandler
	CompleteOrder      CompleteOrderHandler
	ReleaseUnit        ReleaseUnitHandler
	DeleteUser         DeleteUserHandler

	GetUserOrders     GetUserOrdersHandler
	GetOrder          GetOrderHandler
	GetTariffs        GetTariffsHandler
	GetFreeUnitCounts GetFreeUnitCountsHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	clock    clock.Clock
	logger   *slog.Logger
}

func NewServer(handlers Handlers, clk clock.Clock, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		clock:    clk,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateWarehouse handles POST /api/v1/warehouses. The new warehouse is provisioned with its initial units.
//
//	@Summary	Create a warehouse
//	@Tags		warehouses
//	@Accept		json
//	@Produce	json
//	@Param		request	body		NewWarehouse	true	"Request body"
//	@Success	201		{object}	WarehouseCreated
//	@Failure	400	{object}	Error	"Invalid request"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/warehouses [post]
func (s *Server) CreateWarehouse(c echo.Context) error {
	var req NewWarehouse
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWarehouseCommand(id, req.Name, req.Address)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CreateWarehouse.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, WarehouseCreated{ID: id.String()})
}

// ProvisionWarehouse handles POST /api/v1/warehouses/:warehouseId/provision.
//
//	@Summary	Provision a warehouse
//	@Tags		warehouses
//	@Accept		json
//	@Produce	json
//	@Param		warehouseId	path		string	true	"Warehouse ID"	format(uuid)
//	@Success	200		{object}	UnitsProvisioned
//	@Failure	400	{object}	Error	"Invalid warehouse id"
//	@Failure	404	{object}	Error	"Warehouse not found"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/warehouses/{warehouseId}/provision [post]
func (s *Server) ProvisionWarehouse(c echo.Context) error {
	id, err := pathID(c, "warehouseId")
	if err != nil {
		return badRequest(c, "Invalid warehouse id")
	}

	cmd, err := commands.NewProvisionWarehouseCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.ProvisionWarehouse.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, UnitsProvisioned{Created: created})
}

// CreateOrder handles POST /api/v1/orders: books any free unit of the requested size.
//
//	@Summary	Book a unit of a size
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		NewOrder	true	"Request body"
//	@Success	201		{object}	OrderCreated
//	@Failure	400	{object}	Error	"Invalid request"
//	@Failure	409	{object}	Error	"No free units of this size, or the customer was saved by a concurrent request"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrder
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	customerID := kernel.NewUUID()
	if req.Customer.ID != "" {
		id, err := kernel.UUIDFromString(req.Customer.ID)
		if err != nil {
			return badRequest(c, "Invalid customer id")
		}
		customerID = id
	}

	size, err := kernel.ParseSize(req.Size)
	if err != nil {
		return s.fail(c, err)
	}

	start, err := s.parseStart(req.Start)
	if err != nil {
		return badRequest(c, "Start must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
	}

	delivery, err := toDelivery(req.Delivery)
	if err != nil {
		return s.fail(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, commands.Customer{
		ID:      customerID,
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	}, size, start, req.Days, delivery)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		rejected(err)
		return s.fail(c, err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(size.String()).Inc()
	return c.JSON(http.StatusCreated, OrderCreated{OrderID: orderID.String(), UserID: customerID.String()})
}

// ReserveUnit handles POST /api/v1/units/:unitId/orders: books one specific unit.
//
//	@Summary	Book a specific unit
//	@Tags		units
//	@Accept		json
//	@Produce	json
//	@Param		unitId	path		string			true	"Storage unit ID"	format(uuid)
//	@Param		request	body		NewReservation	true	"Request body"
//	@Success	201		{object}	OrderCreated
//	@Failure	400	{object}	Error	"Invalid request"
//	@Failure	404	{object}	Error	"Unit or user not found"
//	@Failure	409	{object}	Error	"Unit already booked for the period"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/units/{unitId}/orders [post]
func (s *Server) ReserveUnit(c echo.Context) error {
	unitID, err := pathID(c, "unitId")
	if err != nil {
		return badRequest(c, "Invalid unit id")
	}

	var req NewReservation
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	start, err := s.parseStart(req.Start)
	if err != nil {
		return badRequest(c, "Start must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
	}

	delivery, err := toDelivery(req.Delivery)
	if err != nil {
		return s.fail(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewReserveUnitCommand(orderID, userID, unitID, start, req.Days, delivery)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.ReserveUnit.Handle(c.Request().Context(), cmd); err != nil {
		rejected(err)
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreated{OrderID: orderID.String(), UserID: userID.String()})
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete (pickup).
//
//	@Summary	Pick up an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"	format(uuid)
//	@Success	204
//	@Failure	400	{object}	Error	"Invalid order id"
//	@Failure	404	{object}	Error	"Order not found"
//	@Failure	409	{object}	Error	"Order already completed"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/orders/{orderId}/complete [post]
func (s *Server) CompleteOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	metrics.OrdersCompletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ReleaseUnit handles POST /api/v1/orders/:orderId/release. Releasing a free unit succeeds with released=false.
//
//	@Summary	Release the unit of an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"	format(uuid)
//	@Success	200		{object}	Released
//	@Failure	400	{object}	Error	"Invalid order id"
//	@Failure	404	{object}	Error	"Order not found"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/orders/{orderId}/release [post]
func (s *Server) ReleaseUnit(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewReleaseUnitCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	released, err := s.handlers.ReleaseUnit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	if released {
		metrics.UnitsReleasedTotal.Inc()
	}
	return c.JSON(http.StatusOK, Released{Released: released})
}

// DeleteUser handles DELETE /api/v1/users/:userId together with the user's orders.
//
//	@Summary	Delete a user with their orders
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		userId	path	string	true	"User ID"	format(uuid)
//	@Success	204
//	@Failure	400	{object}	Error	"Invalid user id"
//	@Failure	404	{object}	Error	"User not found"
//	@Failure	409	{object}	Error	"User received a new order while being deleted"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/users/{userId} [delete]
func (s *Server) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/users/:userId/orders. Completed orders are hidden unless ?all=true.
//
//	@Summary	List the orders of a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"	format(uuid)
//	@Param		all		query		bool	false	"Include completed orders"
//	@Success	200		{array}		Order
//	@Failure	400	{object}	Error	"Invalid request"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/users/{userId}/orders [get]
func (s *Server) GetUserOrders(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	includeCompleted := false
	if err = runtime.BindQueryParameter("form", true, false, "all", c.QueryParams(), &includeCompleted); err != nil {
		return badRequest(c, "Query parameter all must be a boolean")
	}

	query, err := queries.NewGetUserOrdersQuery(userID, includeCompleted)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.GetUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"	format(uuid)
//	@Success	200		{object}	Order
//	@Failure	400	{object}	Error	"Invalid order id"
//	@Failure	404	{object}	Error	"Order not found"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(view))
}

// GetTariffs handles GET /api/v1/tariffs.
//
//	@Summary	List tariffs
//	@Tags		tariffs
//	@Accept		json
//	@Produce	json
//	@Success	200		{array}		Tariff
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/tariffs [get]
func (s *Server) GetTariffs(c echo.Context) error {
	tariffs, err := s.handlers.GetTariffs.Handle(c.Request().Context(), queries.NewGetTariffsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Tariff, len(tariffs))
	for i, t := range tariffs {
		response[i] = Tariff{
			Size:      t.Size.String(),
			Label:     t.Label,
			DailyRate: t.DailyRate,
			FreeUnits: t.FreeUnits,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetFreeUnits handles GET /api/v1/units/free with an optional warehouseId filter.
//
//	@Summary	Count free units
//	@Tags		units
//	@Accept		json
//	@Produce	json
//	@Param		warehouseId	query		string	false	"Only count units of this warehouse"	format(uuid)
//	@Success	200		{object}	FreeUnits
//	@Failure	400	{object}	Error	"Invalid warehouse id"
//	@Failure	503	{object}	Error	"Storage is temporarily unavailable"
//	@Router		/units/free [get]
func (s *Server) GetFreeUnits(c echo.Context) error {
	var param *openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, false, "warehouseId", c.QueryParams(), &param); err != nil {
		return badRequest(c, "Invalid warehouse id")
	}

	var warehouseID *kernel.UUID
	if param != nil {
		id, err := kernel.UUIDFromString(param.String())
		if err != nil {
			return badRequest(c, "Invalid warehouse id")
		}
		warehouseID = &id
	}

	query, err := queries.NewGetFreeUnitCountsQuery(warehouseID)
	if err != nil {
		return s.fail(c, err)
	}

	counts, err := s.handlers.GetFreeUnitCounts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := FreeUnits{Total: counts.Total, BySize: make([]FreeUnitCount, len(counts.BySize))}
	for i, count := range counts.BySize {
		response.BySize[i] = FreeUnitCount{
			Size:  count.Size.String(),
			Label: count.Size.Label(),
			Free:  count.Free,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// parseStart accepts a calendar date (midnight UTC) or an RFC 3339 timestamp. Empty means now.
func (s *Server) parseStart(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.clock.Now(), nil
	}

	if date, err := time.Parse(time.DateOnly, raw); err == nil {
		return date.UTC(), nil
	}

	start, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return start.UTC(), nil
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

func toDelivery(req Delivery) (order.Delivery, error) {
	method, err := order.ParseDeliveryMethod(req.Method)
	if err != nil {
		return order.Delivery{}, err
	}
	return order.NewDelivery(method, req.PickupAddress)
}
