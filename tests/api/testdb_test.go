package apitest

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
)

const (
	testUser = "admin"
	testPass = "secret"
)

func apiTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("api_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
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

// fixture is the seeded context most endpoint tests start from.
type fixture struct {
	Product   entity.Product
	Inventory inventoryEntity.Inventory
	Customer  entity.Customer
	User      entity.User
	Order     salesEntity.Order
	Item      salesEntity.OrderItem
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	f.Product = entity.Product{
		Model:         "ROG Strix G15",
		AsusPn:        "G513QR-HF010T",
		BasePrice:     decimal.RequireFromString("1499.99"),
		MinStockLevel: 10,
		IsActive:      true,
	}
	if err := db.Create(&f.Product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	f.Inventory = inventoryEntity.Inventory{
		ProductID:         f.Product.ID,
		TotalQuantity:     100,
		AllocatedQuantity: 20,
		AvailableQuantity: 80,
	}
	if err := db.Create(&f.Inventory).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	f.Customer = entity.Customer{Name: "Tech Solutions Inc"}
	if err := db.Create(&f.Customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	f.User = entity.User{
		Username:     "seeduser",
		Email:        "seed@example.com",
		PasswordHash: "x",
		Role:         entity.RoleSales,
		IsActive:     true,
	}
	if err := db.Create(&f.User).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	f.Order = salesEntity.Order{
		CustomerID:       f.Customer.ID,
		UserID:           f.User.ID,
		PoNumber:         "PO-2024-100",
		Status:           "Processing",
		TotalAmount:      decimal.RequireFromString("74999.50"),
		ShippingTerm:     "FOB",
		OrderDate:        time.Now(),
		AllocationStatus: salesEntity.AllocationPending,
	}
	if err := db.Create(&f.Order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	f.Item = salesEntity.OrderItem{
		OrderID:   f.Order.ID,
		ProductID: f.Product.ID,
		Quantity:  50,
		UnitPrice: decimal.RequireFromString("1499.99"),
		Status:    salesEntity.ItemPending,
	}
	if err := db.Create(&f.Item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}

	return f
}

func newAPIServer(t *testing.T, db *gorm.DB, register func(g *echo.Group, db *gorm.DB)) *echo.Echo {
	t.Helper()
	e := echo.New()
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.BasicAuth(func(user, pass string, c echo.Context) (bool, error) {
		return user == testUser && pass == testPass, nil
	}))
	register(apiGroup, db)
	return e
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}
