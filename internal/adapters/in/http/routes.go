package http

import (
	"log/slog"
	"net/http"
	"time"

	_ "selfstorage/internal/generated/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance with middlewares and every route of the server.
//
//	@title			Self-storage reservation API
//	@version		1.0
//	@description	Books storage units, tracks rentals and reports free capacity.
//	@BasePath		/api/v1
func NewEcho(server *Server, logger *slog.Logger, requestTimeout time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)

	RegisterMiddlewares(e, logger, requestTimeout)
	server.Register(e)

	return e
}

func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/warehouses", s.CreateWarehouse)
	api.POST("/warehouses/:warehouseId/provision", s.ProvisionWarehouse)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/release", s.ReleaseUnit)

	api.POST("/units/:unitId/orders", s.ReserveUnit)
	api.GET("/units/free", s.GetFreeUnits)

	api.GET("/users/:userId/orders", s.GetUserOrders)
	api.DELETE("/users/:userId", s.DeleteUser)

	api.GET("/tariffs", s.GetTariffs)
}
