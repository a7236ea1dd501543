package dashboard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
	salesRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/sales"
)

// KPI holds the headline numbers of the dashboard.
type KPI struct {
	MtdOrdersValue     float64 `json:"mtdOrdersValue" mapstructure:"mtdOrdersValue"`
	YtdOrdersValue     float64 `json:"ytdOrdersValue" mapstructure:"ytdOrdersValue"`
	TrendPercent       float64 `json:"trendPercent" mapstructure:"trendPercent"`
	PendingAllocations int64   `json:"pendingAllocations" mapstructure:"pendingAllocations"`
	PendingShipments   int64   `json:"pendingShipments" mapstructure:"pendingShipments"`
	LowStockAlerts     int     `json:"lowStockAlerts" mapstructure:"lowStockAlerts"`
}

// StatusCount is one slice of a status distribution.
type StatusCount struct {
	Status string `json:"status" mapstructure:"status"`
	Count  int64  `json:"count" mapstructure:"count"`
}

// LowStockProduct is a product whose available stock is at or below its minimum.
type LowStockProduct struct {
	ID                uint   `json:"id" mapstructure:"id"`
	Model             string `json:"model" mapstructure:"model"`
	AsusPn            string `json:"asusPn" mapstructure:"asus_pn"`
	MinStockLevel     int    `json:"minStockLevel" mapstructure:"min_stock_level"`
	AvailableQuantity int    `json:"availableQuantity" mapstructure:"available_quantity"`
	AllocatedQuantity int    `json:"allocatedQuantity" mapstructure:"allocated_quantity"`
}

// RecentOrder is a compact order row for the activity feed.
type RecentOrder struct {
	ID               uint      `json:"id" mapstructure:"id"`
	PoNumber         string    `json:"poNumber" mapstructure:"poNumber"`
	CustomerName     string    `json:"customerName" mapstructure:"customerName"`
	OrderDate        time.Time `json:"orderDate" mapstructure:"-"`
	TotalAmount      float64   `json:"totalAmount" mapstructure:"totalAmount"`
	AllocationStatus string    `json:"allocation_status" mapstructure:"allocation_status"`
}

// TopCustomer ranks customers by order count.
type TopCustomer struct {
	ID         uint    `json:"id" mapstructure:"id"`
	Name       string  `json:"name" mapstructure:"name"`
	OrderCount int64   `json:"orderCount" mapstructure:"order_count"`
	TotalValue float64 `json:"totalValue" mapstructure:"total_value"`
}

// Snapshot is the full dashboard payload. It is recomputed on demand or by
// the dashboard_refresh cron job and cached for the UI's periodic refresh.
type Snapshot struct {
	KPI                        KPI               `json:"kpi"`
	OrderStatusDistribution    []StatusCount     `json:"orderStatusDistribution"`
	TrackingStatusDistribution []StatusCount     `json:"trackingStatusDistribution"`
	LowStockProducts           []LowStockProduct `json:"lowStockProducts"`
	RecentOrders               []RecentOrder     `json:"recentOrders"`
	TopCustomers               []TopCustomer     `json:"topCustomers"`
	GeneratedAt                time.Time         `json:"generatedAt"`
}

// GetSnapshot computes the dashboard from the database.
func GetSnapshot(db *gorm.DB) (*Snapshot, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	snap := &Snapshot{GeneratedAt: now}

	mtd, err := sumOrders(db, startOfMonth, nil)
	if err != nil {
		return nil, err
	}
	ytd, err := sumOrders(db, startOfYear, nil)
	if err != nil {
		return nil, err
	}
	lastMonth, err := sumOrders(db, startOfLastMonth, &startOfMonth)
	if err != nil {
		return nil, err
	}

	snap.KPI.MtdOrdersValue, _ = mtd.Float64()
	snap.KPI.YtdOrdersValue, _ = ytd.Float64()
	if !lastMonth.IsZero() {
		trend := mtd.Sub(lastMonth).Div(lastMonth).Mul(decimal.NewFromInt(100))
		snap.KPI.TrendPercent, _ = trend.Float64()
	}

	// Allocation status distribution across orders
	if err := db.Model(&salesEntity.Order{}).
		Select("allocation_status as status, count(*) as count").
		Group("allocation_status").
		Scan(&snap.OrderStatusDistribution).Error; err != nil {
		return nil, fmt.Errorf("order status distribution: %w", err)
	}

	// Tracking statuses are stored as a JSON array per order; unpack and count
	var orders []salesEntity.Order
	if err := db.Select("tracking_status").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load tracking statuses: %w", err)
	}
	trackingCounts := map[string]int64{}
	for i := range orders {
		var statuses []string
		if len(orders[i].TrackingStatus) == 0 {
			continue
		}
		if err := json.Unmarshal(orders[i].TrackingStatus, &statuses); err != nil {
			continue
		}
		for _, s := range statuses {
			trackingCounts[s]++
		}
	}
	for status, count := range trackingCounts {
		snap.TrackingStatusDistribution = append(snap.TrackingStatusDistribution, StatusCount{Status: status, Count: count})
	}

	lowStock, err := lowStockProducts(db, 5)
	if err != nil {
		return nil, err
	}
	snap.LowStockProducts = lowStock
	snap.KPI.LowStockAlerts = len(lowStock)

	recent, err := salesRepo.NewOrderRepository(db).RecentOrders(5)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	for i := range recent {
		ro := RecentOrder{
			ID:               recent[i].ID,
			PoNumber:         recent[i].PoNumber,
			OrderDate:        recent[i].OrderDate,
			AllocationStatus: recent[i].AllocationStatus,
		}
		ro.TotalAmount, _ = recent[i].TotalAmount.Float64()
		if recent[i].Customer != nil {
			ro.CustomerName = recent[i].Customer.Name
		}
		snap.RecentOrders = append(snap.RecentOrders, ro)
	}

	top, err := topCustomers(db, 5)
	if err != nil {
		return nil, err
	}
	snap.TopCustomers = top

	if err := db.Model(&salesEntity.Order{}).
		Where("allocation_status IN ?", []string{salesEntity.AllocationPending, salesEntity.AllocationPartially}).
		Count(&snap.KPI.PendingAllocations).Error; err != nil {
		return nil, fmt.Errorf("pending allocations: %w", err)
	}
	if err := db.Model(&salesEntity.Order{}).
		Where("allocation_status = ? AND actual_ship_date IS NULL", salesEntity.AllocationFully).
		Count(&snap.KPI.PendingShipments).Error; err != nil {
		return nil, fmt.Errorf("pending shipments: %w", err)
	}

	return snap, nil
}

func sumOrders(db *gorm.DB, from time.Time, until *time.Time) (decimal.Decimal, error) {
	q := db.Model(&salesEntity.Order{}).Where("order_date >= ?", from)
	if until != nil {
		q = q.Where("order_date < ?", *until)
	}
	var total *string
	if err := q.Select("sum(total_amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("sum orders: %w", err)
	}
	if total == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*total)
}

// lowStockProducts joins products and inventory with raw SQL; rows come back
// as loose maps and are decoded into typed structs via mapstructure.
func lowStockProducts(db *gorm.DB, limit int) ([]LowStockProduct, error) {
	var rows []map[string]interface{}
	err := db.Raw(`
		SELECT p.id, p.model, p.asus_pn, p.min_stock_level,
		       i.available_quantity, i.allocated_quantity
		FROM products p
		JOIN inventory i ON i.product_id = p.id
		WHERE i.available_quantity <= p.min_stock_level
		  AND p.min_stock_level > 0
		ORDER BY i.available_quantity ASC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}

	out := make([]LowStockProduct, 0, len(rows))
	for _, row := range rows {
		var p LowStockProduct
		cfg := &mapstructure.DecoderConfig{
			Result:           &p,
			WeaklyTypedInput: true,
			TagName:          "mapstructure",
		}
		dec, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(row); err != nil {
			return nil, fmt.Errorf("decode low stock row: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func topCustomers(db *gorm.DB, limit int) ([]TopCustomer, error) {
	var rows []map[string]interface{}
	err := db.Raw(`
		SELECT c.id, c.name, count(o.id) as order_count,
		       coalesce(sum(o.total_amount), 0) as total_value
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name
		ORDER BY order_count DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}

	out := make([]TopCustomer, 0, len(rows))
	for _, row := range rows {
		var c TopCustomer
		cfg := &mapstructure.DecoderConfig{
			Result:           &c,
			WeaklyTypedInput: true,
			TagName:          "mapstructure",
		}
		dec, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(row); err != nil {
			return nil, fmt.Errorf("decode top customer row: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}
