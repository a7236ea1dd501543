package jobs

import (
	"log"

	"github.com/zzrilakkuma/sales-activity-management-system/config"
	"github.com/zzrilakkuma/sales-activity-management-system/cron"
	dashboardService "github.com/zzrilakkuma/sales-activity-management-system/service/dashboard"
	stockService "github.com/zzrilakkuma/sales-activity-management-system/service/stock"
)

func init() {
	// Server-side analogue of the dashboard's 5 minute auto refresh
	cron.Register("dashboard_refresh", "*/5 * * * *", DashboardRefreshJob)
	cron.Register("low_stock_alert", "0 * * * *", LowStockAlertJob)
}

// DashboardRefreshJob recomputes the cached dashboard snapshot.
func DashboardRefreshJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("dashboard_refresh: db connect failed: %v", err)
		return
	}
	if _, err := dashboardService.Refresh(db); err != nil {
		log.Printf("dashboard_refresh: %v", err)
		return
	}
	log.Println("dashboard_refresh: snapshot updated")
}

// LowStockAlertJob logs products at or below their minimum stock level.
func LowStockAlertJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("low_stock_alert: db connect failed: %v", err)
		return
	}
	overview, err := stockService.GetOverview(db)
	if err != nil {
		log.Printf("low_stock_alert: %v", err)
		return
	}
	for _, item := range overview.StockItems {
		if item.Status == stockService.StatusLowStock || item.Status == stockService.StatusOutOfStock {
			log.Printf("low_stock_alert: %s (%s) available=%d min=%d", item.Model, item.AsusPn, item.Available, item.MinStockLevel)
		}
	}
}
