package entity

import "time"

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleSales = "SALES"
	RoleUser  = "USER"
)

type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(40);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(72);not null" json:"-"`
	Role         string    `gorm:"column:role;type:varchar(16);not null;default:USER" json:"role"`
	// No gorm default: a default tag makes Create drop an explicit false
	// and deactivated accounts would come back active.
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
