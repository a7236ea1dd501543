package entity

import "time"

// ApiToken backs AUTH_TYPE=token. Tokens are opaque UUIDs issued via the CLI.
type ApiToken struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Token     string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex" json:"token"`
	Revoked   uint16    `gorm:"column:revoked;not null;default:0" json:"revoked"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (ApiToken) TableName() string {
	return "api_token"
}
