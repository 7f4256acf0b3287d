package http

import (
	"context"
	"errors"
	"net/http"

	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/domain/services"
	"selfstorage/internal/metrics"
	"selfstorage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// problem maps an application error to a status code and a reason that can be shown to a customer.
func problem(err error) (int, string) {
	switch {
	case errors.Is(err, kernel.ErrInvalidDuration):
		return http.StatusBadRequest, "Storage duration must be between 1 and 3650 days"
	case errors.Is(err, services.ErrSchedulingConflict):
		return http.StatusConflict, "This unit is already booked for the requested dates"
	case errors.Is(err, services.ErrNoUnitsAvailable):
		return http.StatusConflict, "No free units of this size for the requested dates"
	case errors.Is(err, order.ErrOrderAlreadyCompleted):
		return http.StatusConflict, "The order is already completed"
	case errors.Is(err, commands.ErrUnitNotFound):
		return http.StatusNotFound, "Storage unit not found"
	case errors.Is(err, commands.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, commands.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, commands.ErrWarehouseNotFound):
		return http.StatusNotFound, "Warehouse not found"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, "A concurrent request saved the same record, please repeat the request"
	case errors.Is(err, errs.ErrRelationViolated):
		return http.StatusConflict, "The request conflicts with related records"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrStorageUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Storage is temporarily unavailable, please try again later"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code, message := problem(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	return c.JSON(code, Error{Code: code, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// rejected counts bookings refused for lack of capacity.
func rejected(err error) {
	switch {
	case errors.Is(err, services.ErrSchedulingConflict):
		metrics.BookingRejectionsTotal.WithLabelValues("scheduling_conflict").Inc()
	case errors.Is(err, services.ErrNoUnitsAvailable):
		metrics.BookingRejectionsTotal.WithLabelValues("no_units_available").Inc()
	}
}
