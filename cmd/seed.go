package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/zzrilakkuma/sales-activity-management-system/config"
	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
)

var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Insert a minimal demo dataset (product, customer, user, order, allocation)",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		desc := "Gaming Laptop with RTX 3070"
		product := entity.Product{
			Model:         "ROG Strix G15",
			AsusPn:        "G513QR-HF010T",
			BasePrice:     decimal.RequireFromString("1499.99"),
			MinStockLevel: 10,
			Description:   &desc,
			IsActive:      true,
		}
		if err := db.Create(&product).Error; err != nil {
			fmt.Printf("Seed product failed: %v\n", err)
			return
		}

		inv := inventoryEntity.Inventory{
			ProductID:         product.ID,
			TotalQuantity:     50,
			AllocatedQuantity: 10,
			AvailableQuantity: 40,
		}
		if err := db.Create(&inv).Error; err != nil {
			fmt.Printf("Seed inventory failed: %v\n", err)
			return
		}

		contact := "John Doe"
		email := "john.doe@techsolutions.com"
		phone := "123-456-7890"
		address := "123 Tech Street, Silicon Valley, CA"
		term := "NET30"
		customer := entity.Customer{
			Name:          "Tech Solutions Inc",
			ContactPerson: &contact,
			Email:         &email,
			Phone:         &phone,
			Address:       &address,
			PriceTerm:     &term,
		}
		if err := db.Create(&customer).Error; err != nil {
			fmt.Printf("Seed customer failed: %v\n", err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 12)
		if err != nil {
			fmt.Printf("Hash password failed: %v\n", err)
			return
		}
		user := entity.User{
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: string(hash),
			Role:         entity.RoleSales,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Seed user failed: %v\n", err)
			return
		}

		order := salesEntity.Order{
			CustomerID:       customer.ID,
			UserID:           user.ID,
			PoNumber:         "PO-2023-001",
			Status:           "Processing",
			TotalAmount:      decimal.RequireFromString("2999.98"),
			ShippingTerm:     "FOB",
			OrderDate:        time.Now(),
			AllocationStatus: salesEntity.AllocationPending,
			TrackingStatus:   datatypes.JSON([]byte(`["ALLOCATION_TRACKING"]`)),
			OrderItems: []salesEntity.OrderItem{
				{
					ProductID: product.ID,
					Quantity:  2,
					UnitPrice: decimal.RequireFromString("1499.99"),
					Status:    salesEntity.ItemPending,
				},
			},
		}
		if err := db.Create(&order).Error; err != nil {
			fmt.Printf("Seed order failed: %v\n", err)
			return
		}

		allocation := inventoryEntity.Allocation{
			InventoryID:           inv.ID,
			OrderItemID:           order.OrderItems[0].ID,
			Quantity:              2,
			Status:                inventoryEntity.StatusPending,
			EstimatedDeliveryDate: time.Now().Add(7 * 24 * time.Hour),
		}
		if err := db.Create(&allocation).Error; err != nil {
			fmt.Printf("Seed allocation failed: %v\n", err)
			return
		}

		fmt.Println("Seed completed successfully.")
	},
}

var autoMigrateCmd = &cobra.Command{
	Use:   "db:automigrate",
	Short: "Create or update tables from the entity definitions (dev only)",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		err = db.AutoMigrate(
			&entity.User{},
			&entity.ApiToken{},
			&entity.Customer{},
			&entity.Product{},
			&inventoryEntity.Inventory{},
			&salesEntity.Order{},
			&salesEntity.OrderItem{},
			&salesEntity.Shipment{},
			&inventoryEntity.Allocation{},
		)
		if err != nil {
			fmt.Printf("AutoMigrate failed: %v\n", err)
			return
		}
		fmt.Println("Schema up to date.")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(autoMigrateCmd)
}
