package order

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	salesRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/sales"
	orderService "github.com/zzrilakkuma/sales-activity-management-system/service/order"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

func RegisterOrderRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/orders")

	// GET /api/orders – list with filters from query params
	g.GET("", func(c echo.Context) error {
		filters, err := parseFilters(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		orders, err := orderService.Search(db, filters)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, orders)
	})

	// GET /api/orders/:id – single order with full context
	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		o, err := orderService.Details(db, uint(id))
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, o)
	})

	// POST /api/orders – create an order with its items
	g.POST("", func(c echo.Context) error {
		var body orderService.CreateInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.CustomerID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerId is required"})
		}
		if uid, ok := c.Get("user_id").(uint); ok && body.UserID == 0 {
			body.UserID = uid
		}

		o, err := orderService.CreateOrder(db, body)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, o)
	})
}

func parseFilters(c echo.Context) (salesRepo.SearchFilters, error) {
	f := salesRepo.SearchFilters{
		PoNumber:     c.QueryParam("poNumber"),
		CustomerName: c.QueryParam("customerName"),
		Status:       c.QueryParam("status"),
	}
	if v := c.QueryParam("dateFrom"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if v := c.QueryParam("dateTo"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, err
		}
		f.DateTo = &t
	}
	if v := c.QueryParam("amountMin"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, err
		}
		f.AmountMin = &d
	}
	if v := c.QueryParam("amountMax"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, err
		}
		f.AmountMax = &d
	}
	return f, nil
}
