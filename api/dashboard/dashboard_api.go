package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	dashboardService "github.com/zzrilakkuma/sales-activity-management-system/service/dashboard"
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
}

func RegisterDashboardRoutes(apiGroup *echo.Group, db *gorm.DB) {
	// GET /api/dashboard – cached KPI snapshot
	apiGroup.GET("/dashboard", func(c echo.Context) error {
		snap, err := dashboardService.CachedSnapshot(db)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, snap)
	})

	// POST /api/dashboard/refresh – force recompute (admin tooling)
	apiGroup.POST("/dashboard/refresh", func(c echo.Context) error {
		snap, err := dashboardService.Refresh(db)
		if err != nil {
			return api.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, snap)
	})
}
