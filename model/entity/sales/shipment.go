package sales

import "time"

type Shipment struct {
	ID                    uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID               uint       `gorm:"column:order_id;not null;index" json:"orderId"`
	TrackingNumber        *string    `gorm:"column:tracking_number;type:varchar(64)" json:"trackingNumber"`
	Carrier               *string    `gorm:"column:carrier;type:varchar(64)" json:"carrier"`
	Status                string     `gorm:"column:status;type:varchar(32);not null;default:Preparing" json:"status"`
	EstimatedDeliveryDate *time.Time `gorm:"column:estimated_delivery_date" json:"estimatedDeliveryDate"`
	ActualDeliveryDate    *time.Time `gorm:"column:actual_delivery_date" json:"actualDeliveryDate"`
	Notes                 *string    `gorm:"column:notes;type:varchar(500)" json:"notes"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Shipment) TableName() string {
	return "shipments"
}
