package customer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	customerRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/customer"
)

func init() {
	api.RegisterModule(RegisterCustomerRoutes)
}

func RegisterCustomerRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/customers")
	repo := customerRepo.NewCustomerRepository(db)

	// GET /api/customers – all customers ordered by name
	g.GET("", func(c echo.Context) error {
		customers, err := repo.List()
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, customers)
	})

	// POST /api/customers – create a customer
	g.POST("", func(c echo.Context) error {
		var body entity.Customer
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Name == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
		}
		body.ID = 0
		if err := repo.Create(&body); err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, body)
	})
}
