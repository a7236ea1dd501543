package modeltest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
)

func modelTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("model_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
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
