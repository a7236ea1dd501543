package allocation

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	allocationService "github.com/zzrilakkuma/sales-activity-management-system/service/allocation"
)

func init() {
	api.RegisterModule(RegisterAllocationRoutes)
}

func RegisterAllocationRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/inventory/allocation")

	// GET /api/inventory/allocation – list with summary counts
	g.GET("", func(c echo.Context) error {
		report, err := allocationService.List(db)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, report)
	})

	// POST /api/inventory/allocation – allocate stock to an order item
	g.POST("", func(c echo.Context) error {
		var body allocationService.AllocateInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.InventoryID == 0 || body.OrderItemID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "inventoryId and orderItemId are required"})
		}

		view, err := allocationService.Allocate(db, body)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, view)
	})

	// PATCH /api/inventory/allocation/:id – update lifecycle status
	g.PATCH("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid allocation id"})
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Status == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "status is required"})
		}

		view, err := allocationService.SetStatus(db, uint(id), body.Status)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, view)
	})
}
