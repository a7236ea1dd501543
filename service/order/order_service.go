package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
	"github.com/zzrilakkuma/sales-activity-management-system/model/repository"
	salesRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/sales"
)

var (
	// ErrNoItems rejects orders without at least one line.
	ErrNoItems = errors.New("order requires at least one item")
	// ErrInvalidItem rejects lines with non-positive quantity or negative price.
	ErrInvalidItem = errors.New("order item has invalid quantity or price")
)

// ItemInput is one product line of a new order.
type ItemInput struct {
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateInput is the schema-validated payload for creating an order.
type CreateInput struct {
	CustomerID        uint        `json:"customerId"`
	UserID            uint        `json:"userId"`
	PoNumber          string      `json:"poNumber"`
	ShippingTerm      string      `json:"shippingTerm"`
	OrderDate         *time.Time  `json:"orderDate"`
	EstimatedShipDate *time.Time  `json:"estimatedShipDate"`
	Notes             *string     `json:"notes"`
	Items             []ItemInput `json:"items"`
}

// CreateOrder inserts an order and its items in one transaction. The total
// amount is the sum of quantity times unit price across all lines.
func CreateOrder(db *gorm.DB, in CreateInput) (*salesEntity.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	if in.PoNumber == "" {
		return nil, fmt.Errorf("%w: po number is required", ErrInvalidItem)
	}

	total := decimal.Zero
	items := make([]salesEntity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, ErrInvalidItem
		}
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, salesEntity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Status:    salesEntity.ItemPending,
		})
	}

	orderDate := time.Now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	o := &salesEntity.Order{
		CustomerID:        in.CustomerID,
		UserID:            in.UserID,
		PoNumber:          in.PoNumber,
		Status:            "Processing",
		TotalAmount:       total,
		ShippingTerm:      in.ShippingTerm,
		OrderDate:         orderDate,
		EstimatedShipDate: in.EstimatedShipDate,
		AllocationStatus:  salesEntity.AllocationPending,
		TrackingStatus:    datatypes.JSON([]byte(`[]`)),
		Notes:             in.Notes,
		OrderItems:        items,
	}

	err := repository.WithTransaction(db, func(tx *gorm.DB) error {
		return salesRepo.NewOrderRepository(tx).Create(o)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return salesRepo.NewOrderRepository(db).FindByID(o.ID)
}

// Search returns orders matching the list page filters.
func Search(db *gorm.DB, f salesRepo.SearchFilters) ([]salesEntity.Order, error) {
	return salesRepo.NewOrderRepository(db).Search(f)
}

// Details loads one order with all joined context.
func Details(db *gorm.DB, id uint) (*salesEntity.Order, error) {
	o, err := salesRepo.NewOrderRepository(db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return o, nil
}
