package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/zzrilakkuma/sales-activity-management-system/config"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the JWT payload for a logged-in user.
type SessionClaims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// IssueSessionToken signs an HS256 token for a user. Expiry comes from
// JWT_EXPIRY (default 12h).
func IssueSessionToken(userID uint, username, role string) (string, error) {
	cfg := config.AppConfig
	if cfg == nil || cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(cfg.JWTExpiry).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseSessionToken validates a token and returns its claims.
func ParseSessionToken(raw string) (*SessionClaims, error) {
	cfg := config.AppConfig
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
