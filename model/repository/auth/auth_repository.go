package auth

import (
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindActiveToken returns a non-revoked API token with its user.
func (r *AuthRepository) FindActiveToken(token string) (*entity.ApiToken, error) {
	var t entity.ApiToken
	err := r.db.Preload("User").
		Where("token = ? AND revoked = 0", token).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindUserByUsername returns an active user by username.
func (r *AuthRepository) FindUserByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("username = ? AND is_active = ?", username, true).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AuthRepository) FindUserByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateToken stores a new API token for a user.
func (r *AuthRepository) CreateToken(t *entity.ApiToken) error {
	return r.db.Create(t).Error
}

// RevokeToken marks a token revoked. Revoked tokens stay in the table.
func (r *AuthRepository) RevokeToken(token string) error {
	return r.db.Model(&entity.ApiToken{}).
		Where("token = ?", token).
		Update("revoked", 1).Error
}
