package product

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	productRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/product"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

// productView flattens available stock onto the product row for order forms.
type productView struct {
	entity.Product
	AvailableQuantity int `json:"availableQuantity"`
}

func RegisterProductRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/products")
	repo := productRepo.NewProductRepository(db)

	// GET /api/products – active products with available stock
	g.GET("", func(c echo.Context) error {
		products, err := repo.ListActive()
		if err != nil {
			return api.ErrorJSON(c, err)
		}

		ids := make([]uint, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		available, err := repo.AvailableQuantities(ids)
		if err != nil {
			return api.ErrorJSON(c, err)
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, productView{Product: p, AvailableQuantity: available[p.ID]})
		}
		return c.JSON(http.StatusOK, views)
	})

	// POST /api/products – create a product
	g.POST("", func(c echo.Context) error {
		var body entity.Product
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Model == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "model is required"})
		}
		body.ID = 0
		body.IsActive = true
		if err := repo.Create(&body); err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, body)
	})
}
