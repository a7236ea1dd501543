package inventory

import (
	"time"

	sales "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
)

// Allocation statuses (naming follows the dashboard UI).
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ValidStatus reports whether s is one of the allocation statuses.
// No transition order is enforced: any status may replace any other.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Allocation is an append-only ledger entry tying an inventory record to an
// order item for a given quantity. Rows are never updated except for status,
// and never deleted (audit trail).
type Allocation struct {
	ID                    uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InventoryID           uint      `gorm:"column:inventory_id;not null;index" json:"inventoryId"`
	OrderItemID           uint      `gorm:"column:order_item_id;not null;index" json:"orderItemId"`
	Quantity              int       `gorm:"column:quantity;not null" json:"quantity"`
	Status                string    `gorm:"column:status;type:varchar(16);not null;default:Pending" json:"status"`
	AllocationDate        time.Time `gorm:"column:allocation_date;autoCreateTime" json:"allocationDate"`
	EstimatedDeliveryDate time.Time `gorm:"column:estimated_delivery_date;not null" json:"estimatedDeliveryDate"`

	Inventory *Inventory       `gorm:"foreignKey:InventoryID" json:"inventory,omitempty"`
	OrderItem *sales.OrderItem `gorm:"foreignKey:OrderItemID" json:"orderItem,omitempty"`
}

func (Allocation) TableName() string {
	return "allocations"
}
