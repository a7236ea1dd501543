package stock

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	stockService "github.com/zzrilakkuma/sales-activity-management-system/service/stock"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

func RegisterStockRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/inventory/stock")

	// GET /api/inventory/stock – stock overview with summary totals
	g.GET("", func(c echo.Context) error {
		overview, err := stockService.GetOverview(db)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, overview)
	})

	// POST /api/inventory/stock – open an inventory row for a product
	g.POST("", func(c echo.Context) error {
		var body struct {
			ProductID     uint `json:"productId"`
			TotalQuantity int  `json:"totalQuantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ProductID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId is required"})
		}

		inv, err := stockService.CreateStock(db, body.ProductID, body.TotalQuantity)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, inv)
	})

	// PATCH /api/inventory/stock/:id – manual counter adjustment
	g.PATCH("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid inventory id"})
		}

		var body struct {
			TotalQuantity     int `json:"totalQuantity"`
			AllocatedQuantity int `json:"allocatedQuantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		inv, err := stockService.AdjustStock(db, uint(id), body.TotalQuantity, body.AllocatedQuantity)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, inv)
	})
}
