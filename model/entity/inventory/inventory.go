package inventory

import (
	"time"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
)

// Inventory holds per-product stock counters. The invariant
// available + allocated == total must hold at all times; only the
// allocation service and stock adjustments may mutate the counters.
type Inventory struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID         uint      `gorm:"column:product_id;not null;uniqueIndex" json:"productId"`
	TotalQuantity     int       `gorm:"column:total_quantity;not null;default:0" json:"totalQuantity"`
	AllocatedQuantity int       `gorm:"column:allocated_quantity;not null;default:0" json:"allocatedQuantity"`
	AvailableQuantity int       `gorm:"column:available_quantity;not null;default:0" json:"availableQuantity"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Product *entity.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Inventory) TableName() string {
	return "inventory"
}
