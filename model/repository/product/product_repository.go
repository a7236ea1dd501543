package product

import (
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByModel(model string) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.Where("model = ?", model).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive returns active products ordered by model.
func (r *ProductRepository) ListActive() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("is_active = ?", true).Order("model asc").Find(&products).Error
	return products, err
}

// AvailableQuantities fetches available stock per product in one query.
func (r *ProductRepository) AvailableQuantities(productIDs []uint) (map[uint]int, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var rows []inventoryEntity.Inventory
	err := r.db.Select("product_id, available_quantity").
		Where("product_id IN ?", productIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[uint]int, len(rows))
	for _, row := range rows {
		result[row.ProductID] = row.AvailableQuantity
	}
	return result, nil
}
