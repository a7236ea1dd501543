package customer

import (
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all customers ordered by name.
func (r *CustomerRepository) List() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.Order("name asc").Find(&customers).Error
	return customers, err
}
