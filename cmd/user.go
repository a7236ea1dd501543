package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/zzrilakkuma/sales-activity-management-system/config"
	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	authRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/auth"
)

var (
	newUsername string
	newEmail    string
	newPassword string
	newRole     string
	tokenUserID uint
)

var userCreateCmd = &cobra.Command{
	Use:   "user:create",
	Short: "Create a user with a bcrypt-hashed password",
	Run: func(cmd *cobra.Command, args []string) {
		if newUsername == "" || newPassword == "" {
			fmt.Println("--username and --password are required")
			return
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
		if err != nil {
			fmt.Printf("Hash password failed: %v\n", err)
			return
		}

		user := entity.User{
			Username:     newUsername,
			Email:        newEmail,
			PasswordHash: string(hash),
			Role:         newRole,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Create user failed: %v\n", err)
			return
		}
		fmt.Printf("Created user %s (id=%d, role=%s)\n", user.Username, user.ID, user.Role)
	},
}

var tokenCreateCmd = &cobra.Command{
	Use:   "token:create",
	Short: "Issue an API token for a user",
	Run: func(cmd *cobra.Command, args []string) {
		if tokenUserID == 0 {
			fmt.Println("--user is required")
			return
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		repo := authRepo.NewAuthRepository(db)
		if _, err := repo.FindUserByID(tokenUserID); err != nil {
			fmt.Printf("User %d not found: %v\n", tokenUserID, err)
			return
		}

		t := entity.ApiToken{
			UserID: tokenUserID,
			Token:  uuid.NewString(),
		}
		if err := repo.CreateToken(&t); err != nil {
			fmt.Printf("Create token failed: %v\n", err)
			return
		}
		fmt.Printf("Token for user %d: %s\n", tokenUserID, t.Token)
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUsername, "username", "", "Username")
	userCreateCmd.Flags().StringVar(&newEmail, "email", "", "Email address")
	userCreateCmd.Flags().StringVar(&newPassword, "password", "", "Password (hashed before storage)")
	userCreateCmd.Flags().StringVar(&newRole, "role", entity.RoleUser, "Role (ADMIN, SALES or USER)")
	tokenCreateCmd.Flags().UintVar(&tokenUserID, "user", 0, "User ID the token belongs to")
	rootCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(tokenCreateCmd)
}
