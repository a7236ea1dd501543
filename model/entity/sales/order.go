package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
)

// Order allocation statuses
const (
	AllocationPending   = "PENDING"
	AllocationChecking  = "CHECKING"
	AllocationChecked   = "CHECKED"
	AllocationPartially = "PARTIALLY"
	AllocationFully     = "FULLY"
	AllocationCancelled = "CANCELLED"
)

type Order struct {
	ID                uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID        uint            `gorm:"column:customer_id;not null;index" json:"customerId"`
	UserID            uint            `gorm:"column:user_id;not null;index" json:"userId"`
	PoNumber          string          `gorm:"column:po_number;type:varchar(64);not null;uniqueIndex" json:"poNumber"`
	Status            string          `gorm:"column:status;type:varchar(32);not null;default:Processing" json:"status"`
	TotalAmount       decimal.Decimal `gorm:"column:total_amount;type:decimal(14,2);not null;default:0" json:"totalAmount"`
	ShippingTerm      string          `gorm:"column:shipping_term;type:varchar(16);not null" json:"shippingTerm"`
	OrderDate         time.Time       `gorm:"column:order_date;not null" json:"orderDate"`
	EstimatedShipDate *time.Time      `gorm:"column:estimated_ship_date" json:"estimatedShipDate"`
	ActualShipDate    *time.Time      `gorm:"column:actual_ship_date" json:"actualShipDate"`
	AllocationStatus  string          `gorm:"column:allocation_status;type:varchar(16);not null;default:PENDING" json:"allocation_status"`
	TrackingStatus    datatypes.JSON  `gorm:"column:tracking_status" json:"tracking_status"`
	Notes             *string         `gorm:"column:notes;type:varchar(500)" json:"notes"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Customer   *entity.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	User       *entity.User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderItems []OrderItem      `gorm:"foreignKey:OrderID" json:"orderItems,omitempty"`
	Shipments  []Shipment       `gorm:"foreignKey:OrderID" json:"shipments,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
