package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order together with its items (GORM association create).
func (r *OrderRepository) Create(o *salesEntity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*salesEntity.Order, error) {
	var o salesEntity.Order
	err := r.db.
		Preload("Customer").
		Preload("User").
		Preload("OrderItems.Product").
		Preload("Shipments").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// SearchFilters mirror the query parameters of the order list endpoint.
// Zero values mean "not filtered".
type SearchFilters struct {
	PoNumber     string
	CustomerName string
	Status       string
	DateFrom     *time.Time
	DateTo       *time.Time
	AmountMin    *decimal.Decimal
	AmountMax    *decimal.Decimal
}

// Search returns orders matching the filters, newest first, with the same
// joined context the list page renders.
func (r *OrderRepository) Search(f SearchFilters) ([]salesEntity.Order, error) {
	q := r.db.Model(&salesEntity.Order{})

	if f.PoNumber != "" {
		q = q.Where("po_number LIKE ?", "%"+f.PoNumber+"%")
	}
	if f.CustomerName != "" {
		q = q.Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("customers.name LIKE ?", "%"+f.CustomerName+"%")
	}
	if f.Status != "" {
		q = q.Where("orders.status = ?", f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("order_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("order_date <= ?", *f.DateTo)
	}
	if f.AmountMin != nil {
		q = q.Where("total_amount >= ?", *f.AmountMin)
	}
	if f.AmountMax != nil {
		q = q.Where("total_amount <= ?", *f.AmountMax)
	}

	var orders []salesEntity.Order
	err := q.
		Preload("Customer").
		Preload("OrderItems.Product").
		Preload("Shipments").
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

// FindItemByID loads a single order item.
func (r *OrderRepository) FindItemByID(id uint) (*salesEntity.OrderItem, error) {
	var item salesEntity.OrderItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RecentOrders returns the latest n orders with customer context.
func (r *OrderRepository) RecentOrders(n int) ([]salesEntity.Order, error) {
	var orders []salesEntity.Order
	err := r.db.
		Preload("Customer").
		Order("order_date desc").
		Limit(n).
		Find(&orders).Error
	return orders, err
}
