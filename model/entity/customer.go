package entity

import "time"

type Customer struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(128);not null;index" json:"name"`
	ContactPerson *string   `gorm:"column:contact_person;type:varchar(64)" json:"contactPerson"`
	Email         *string   `gorm:"column:email;type:varchar(128)" json:"email"`
	Phone         *string   `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Address       *string   `gorm:"column:address;type:varchar(255)" json:"address"`
	PriceTerm     *string   `gorm:"column:price_term;type:varchar(16)" json:"priceTerm"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}
