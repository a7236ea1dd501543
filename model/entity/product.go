package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Model         string          `gorm:"column:model;type:varchar(64);not null;uniqueIndex" json:"model"`
	AsusPn        string          `gorm:"column:asus_pn;type:varchar(64);not null" json:"asusPn"`
	Description   *string         `gorm:"column:description;type:varchar(255)" json:"description"`
	BasePrice     decimal.Decimal `gorm:"column:base_price;type:decimal(12,2);not null;default:0" json:"basePrice"`
	MinStockLevel int             `gorm:"column:min_stock_level;not null;default:0" json:"minStockLevel"`
	IsActive      bool            `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
