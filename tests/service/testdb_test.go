package servicetest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
)

// serviceTestDB opens a file-backed sqlite database so concurrent
// transactions in tests go through real locking.
func serviceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("service_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.ApiToken{},
		&entity.Customer{},
		&entity.Product{},
		&inventoryEntity.Inventory{},
		&salesEntity.Order{},
		&salesEntity.OrderItem{},
		&salesEntity.Shipment{},
		&inventoryEntity.Allocation{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type seed struct {
	Product   entity.Product
	Inventory inventoryEntity.Inventory
	Customer  entity.Customer
	User      entity.User
	Order     salesEntity.Order
	Item      salesEntity.OrderItem
}

// seedOrderWithStock creates one product with the given inventory counters
// and one order item ordering itemQty units of it.
func seedOrderWithStock(t *testing.T, db *gorm.DB, total, allocated int, itemQty int) *seed {
	t.Helper()
	s := &seed{}

	s.Product = entity.Product{
		Model:         "ROG Strix G15",
		AsusPn:        "G513QR-HF010T",
		BasePrice:     decimal.RequireFromString("1499.99"),
		MinStockLevel: 10,
		IsActive:      true,
	}
	if err := db.Create(&s.Product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	s.Inventory = inventoryEntity.Inventory{
		ProductID:         s.Product.ID,
		TotalQuantity:     total,
		AllocatedQuantity: allocated,
		AvailableQuantity: total - allocated,
	}
	if err := db.Create(&s.Inventory).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	s.Customer = entity.Customer{Name: "Tech Solutions Inc"}
	if err := db.Create(&s.Customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	s.User = entity.User{
		Username:     "seeduser",
		Email:        "seed@example.com",
		PasswordHash: "x",
		Role:         entity.RoleSales,
		IsActive:     true,
	}
	if err := db.Create(&s.User).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	s.Order = salesEntity.Order{
		CustomerID:       s.Customer.ID,
		UserID:           s.User.ID,
		PoNumber:         "PO-2024-100",
		Status:           "Processing",
		TotalAmount:      decimal.RequireFromString("1499.99").Mul(decimal.NewFromInt(int64(itemQty))),
		ShippingTerm:     "FOB",
		OrderDate:        time.Now(),
		AllocationStatus: salesEntity.AllocationPending,
	}
	if err := db.Create(&s.Order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	s.Item = salesEntity.OrderItem{
		OrderID:   s.Order.ID,
		ProductID: s.Product.ID,
		Quantity:  itemQty,
		UnitPrice: decimal.RequireFromString("1499.99"),
		Status:    salesEntity.ItemPending,
	}
	if err := db.Create(&s.Item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}

	return s
}

func reloadInventory(t *testing.T, db *gorm.DB, id uint) inventoryEntity.Inventory {
	t.Helper()
	var inv inventoryEntity.Inventory
	if err := db.First(&inv, id).Error; err != nil {
		t.Fatalf("reload inventory: %v", err)
	}
	return inv
}

func reloadItem(t *testing.T, db *gorm.DB, id uint) salesEntity.OrderItem {
	t.Helper()
	var item salesEntity.OrderItem
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("reload order item: %v", err)
	}
	return item
}

func countAllocations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&inventoryEntity.Allocation{}).Count(&n).Error; err != nil {
		t.Fatalf("count allocations: %v", err)
	}
	return n
}

// checkInvariant asserts available + allocated == total on an inventory row.
func checkInvariant(t *testing.T, inv inventoryEntity.Inventory) {
	t.Helper()
	if inv.AvailableQuantity+inv.AllocatedQuantity != inv.TotalQuantity {
		t.Errorf("counter invariant broken: available=%d allocated=%d total=%d",
			inv.AvailableQuantity, inv.AllocatedQuantity, inv.TotalQuantity)
	}
}
