package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	allocationService "github.com/zzrilakkuma/sales-activity-management-system/service/allocation"
	orderService "github.com/zzrilakkuma/sales-activity-management-system/service/order"
	stockService "github.com/zzrilakkuma/sales-activity-management-system/service/stock"
)

// ErrorJSON maps service errors onto HTTP statuses and renders the
// structured error payload. Anything unrecognized is a storage error.
func ErrorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, allocationService.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, allocationService.ErrInvalidQuantity),
		errors.Is(err, allocationService.ErrExceedsOrdered),
		errors.Is(err, allocationService.ErrInvalidStatus),
		errors.Is(err, stockService.ErrStockExists),
		errors.Is(err, stockService.ErrNegativeQuantity),
		errors.Is(err, orderService.ErrNoItems),
		errors.Is(err, orderService.ErrInvalidItem):
		status = http.StatusBadRequest
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
