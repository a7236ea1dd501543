package sales

import (
	"github.com/shopspring/decimal"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
)

// Order item statuses
const (
	ItemPending   = "PENDING"
	ItemChecked   = "CHECKED"
	ItemAllocated = "ALLOCATED"
)

// OrderItem is one product line within an order. AllocatedQuantity is
// incremented only by the allocation service and never exceeds Quantity.
type OrderItem struct {
	ID                uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID           uint            `gorm:"column:order_id;not null;index" json:"orderId"`
	ProductID         uint            `gorm:"column:product_id;not null;index" json:"productId"`
	Quantity          int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice         decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null" json:"unitPrice"`
	AllocatedQuantity int             `gorm:"column:allocated_quantity;not null;default:0" json:"allocatedQuantity"`
	Status            string          `gorm:"column:status;type:varchar(16);not null;default:PENDING" json:"status"`

	Order   *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product *entity.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
