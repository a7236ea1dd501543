package inventory

import (
	"gorm.io/gorm"

	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	"github.com/zzrilakkuma/sales-activity-management-system/model/repository"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(inv *inventoryEntity.Inventory) error {
	return r.db.Create(inv).Error
}

func (r *InventoryRepository) FindByID(id uint) (*inventoryEntity.Inventory, error) {
	var inv inventoryEntity.Inventory
	if err := r.db.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindByIDForUpdate loads an inventory row under SELECT ... FOR UPDATE so
// concurrent allocations against the same row serialize. Must be called
// on a transaction handle.
func (r *InventoryRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*inventoryEntity.Inventory, error) {
	var inv inventoryEntity.Inventory
	err := repository.ForUpdate(tx).First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InventoryRepository) FindByProductID(productID uint) (*inventoryEntity.Inventory, error) {
	var inv inventoryEntity.Inventory
	err := r.db.Where("product_id = ?", productID).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListWithProducts returns all inventory rows with their products.
func (r *InventoryRepository) ListWithProducts() ([]inventoryEntity.Inventory, error) {
	var items []inventoryEntity.Inventory
	err := r.db.Preload("Product").Find(&items).Error
	return items, err
}

// Save persists updated counters on an existing row.
func (r *InventoryRepository) Save(inv *inventoryEntity.Inventory) error {
	return r.db.Save(inv).Error
}
