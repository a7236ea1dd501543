package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/api"
	"github.com/zzrilakkuma/sales-activity-management-system/core/auth"
	authRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/auth"
)

func init() {
	api.RegisterRoute(RegisterSessionRoutes)
}

// RegisterSessionRoutes wires the public login and health endpoints.
func RegisterSessionRoutes(e *echo.Echo, db *gorm.DB) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// POST /login – issue a JWT session token for AUTH_TYPE=jwt
	e.POST("/login", func(c echo.Context) error {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Username == "" || body.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
		}

		repo := authRepo.NewAuthRepository(db)
		user, err := repo.FindUserByUsername(body.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}

		token, err := auth.IssueSessionToken(user.ID, user.Username, user.Role)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user": echo.Map{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"role":     user.Role,
			},
		})
	})
}
