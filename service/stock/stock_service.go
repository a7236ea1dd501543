package stock

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	inventoryRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/inventory"
)

var (
	// ErrStockExists means the product already has an inventory row.
	ErrStockExists = errors.New("inventory already exists for product")
	// ErrNegativeQuantity rejects counters that would go below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Stock item display statuses
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Item is the per-product stock view rendered by the stock overview page.
type Item struct {
	ID            uint   `json:"id"`
	Model         string `json:"model"`
	AsusPn        string `json:"asusPn"`
	CurrentStock  int    `json:"currentStock"`
	MinStockLevel int    `json:"minStockLevel"`
	Allocated     int    `json:"allocated"`
	Available     int    `json:"available"`
	Status        string `json:"status"`
}

// Overview aggregates all inventory rows plus the derived totals.
type Overview struct {
	TotalStock     int    `json:"totalStock"`
	AllocatedStock int    `json:"allocatedStock"`
	AvailableStock int    `json:"availableStock"`
	LowStockItems  int    `json:"lowStockItems"`
	StockItems     []Item `json:"stockItems"`
}

// GetOverview returns every inventory row with its product and summary totals.
func GetOverview(db *gorm.DB) (*Overview, error) {
	repo := inventoryRepo.NewInventoryRepository(db)
	rows, err := repo.ListWithProducts()
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	o := &Overview{StockItems: make([]Item, 0, len(rows))}
	for i := range rows {
		row := &rows[i]
		o.TotalStock += row.TotalQuantity
		o.AllocatedStock += row.AllocatedQuantity
		o.AvailableStock += row.AvailableQuantity

		item := Item{
			ID:           row.ID,
			CurrentStock: row.TotalQuantity,
			Allocated:    row.AllocatedQuantity,
			Available:    row.AvailableQuantity,
		}
		if row.Product != nil {
			item.Model = row.Product.Model
			item.AsusPn = row.Product.AsusPn
			item.MinStockLevel = row.Product.MinStockLevel
		}
		switch {
		case row.AvailableQuantity == 0:
			item.Status = StatusOutOfStock
		case row.AvailableQuantity <= item.MinStockLevel:
			item.Status = StatusLowStock
			o.LowStockItems++
		default:
			item.Status = StatusInStock
		}
		o.StockItems = append(o.StockItems, item)
	}
	return o, nil
}

// CreateStock opens an inventory row for a product. All stock starts available.
func CreateStock(db *gorm.DB, productID uint, totalQuantity int) (*inventoryEntity.Inventory, error) {
	if totalQuantity < 0 {
		return nil, ErrNegativeQuantity
	}

	repo := inventoryRepo.NewInventoryRepository(db)
	if _, err := repo.FindByProductID(productID); err == nil {
		return nil, ErrStockExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing inventory: %w", err)
	}

	inv := &inventoryEntity.Inventory{
		ProductID:         productID,
		TotalQuantity:     totalQuantity,
		AllocatedQuantity: 0,
		AvailableQuantity: totalQuantity,
	}
	if err := repo.Create(inv); err != nil {
		return nil, fmt.Errorf("create inventory: %w", err)
	}
	return inv, nil
}

// AdjustStock rewrites the counters of an inventory row, recomputing
// available = total - allocated. Used by manual stock adjustments.
func AdjustStock(db *gorm.DB, id uint, totalQuantity, allocatedQuantity int) (*inventoryEntity.Inventory, error) {
	if totalQuantity < 0 || allocatedQuantity < 0 || allocatedQuantity > totalQuantity {
		return nil, ErrNegativeQuantity
	}

	repo := inventoryRepo.NewInventoryRepository(db)
	inv, err := repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	inv.TotalQuantity = totalQuantity
	inv.AllocatedQuantity = allocatedQuantity
	inv.AvailableQuantity = totalQuantity - allocatedQuantity
	if err := repo.Save(inv); err != nil {
		return nil, fmt.Errorf("save inventory: %w", err)
	}
	return inv, nil
}
