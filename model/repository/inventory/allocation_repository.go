package inventory

import (
	"gorm.io/gorm"

	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
)

type AllocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Create(a *inventoryEntity.Allocation) error {
	return r.db.Create(a).Error
}

func (r *AllocationRepository) FindByID(id uint) (*inventoryEntity.Allocation, error) {
	var a inventoryEntity.Allocation
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByIDWithContext loads an allocation with its full reporting context:
// inventory → product and order item → order → customer.
func (r *AllocationRepository) FindByIDWithContext(id uint) (*inventoryEntity.Allocation, error) {
	var a inventoryEntity.Allocation
	err := r.db.
		Preload("Inventory.Product").
		Preload("OrderItem.Order.Customer").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListWithContext returns all allocations with joined context, newest first.
func (r *AllocationRepository) ListWithContext() ([]inventoryEntity.Allocation, error) {
	var allocations []inventoryEntity.Allocation
	err := r.db.
		Preload("Inventory.Product").
		Preload("OrderItem.Order.Customer").
		Order("allocation_date desc").
		Find(&allocations).Error
	return allocations, err
}

// UpdateStatus replaces the status of an allocation. Quantities are
// immutable once the ledger entry exists.
func (r *AllocationRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&inventoryEntity.Allocation{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
