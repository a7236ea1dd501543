package modeltest

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
	authRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/auth"
	inventoryRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/inventory"
	productRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/product"
	salesRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/sales"
)

func TestAllocationRepositoryUpdateStatus(t *testing.T) {
	db := modelTestDB(t)
	repo := inventoryRepo.NewAllocationRepository(db)

	a := &inventoryEntity.Allocation{
		InventoryID:           1,
		OrderItemID:           1,
		Quantity:              5,
		Status:                inventoryEntity.StatusPending,
		EstimatedDeliveryDate: time.Now().AddDate(0, 0, 7),
	}
	if err := repo.Create(a); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateStatus(a.ID, inventoryEntity.StatusInProgress); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := repo.FindByID(a.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Status != inventoryEntity.StatusInProgress {
		t.Errorf("expected In Progress, got %q", got.Status)
	}
	if got.Quantity != 5 {
		t.Errorf("status update changed quantity: %d", got.Quantity)
	}

	if err := repo.UpdateStatus(99999, inventoryEntity.StatusCompleted); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for unknown id, got %v", err)
	}
}

func TestAllocationRepositoryListOrdering(t *testing.T) {
	db := modelTestDB(t)
	repo := inventoryRepo.NewAllocationRepository(db)

	for i, offset := range []time.Duration{-2 * time.Hour, -1 * time.Hour, 0} {
		a := inventoryEntity.Allocation{
			InventoryID:           1,
			OrderItemID:           1,
			Quantity:              i + 1,
			Status:                inventoryEntity.StatusPending,
			AllocationDate:        time.Now().Add(offset),
			EstimatedDeliveryDate: time.Now().AddDate(0, 0, 7),
		}
		if err := db.Create(&a).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.ListWithContext()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 allocations, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].AllocationDate.After(list[i-1].AllocationDate) {
			t.Errorf("expected newest first ordering at index %d", i)
		}
	}
}

func TestInventoryRepositoryFindByProductID(t *testing.T) {
	db := modelTestDB(t)
	repo := inventoryRepo.NewInventoryRepository(db)

	inv := &inventoryEntity.Inventory{ProductID: 42, TotalQuantity: 10, AvailableQuantity: 10}
	if err := repo.Create(inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByProductID(42)
	if err != nil {
		t.Fatalf("find by product: %v", err)
	}
	if got.ID != inv.ID {
		t.Errorf("expected row %d, got %d", inv.ID, got.ID)
	}

	if _, err := repo.FindByProductID(43); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestProductRepositoryAvailableQuantities(t *testing.T) {
	db := modelTestDB(t)
	repo := productRepo.NewProductRepository(db)

	p1 := entity.Product{Model: "A", AsusPn: "PN-A", BasePrice: decimal.NewFromInt(1), IsActive: true}
	p2 := entity.Product{Model: "B", AsusPn: "PN-B", BasePrice: decimal.NewFromInt(1), IsActive: true}
	for _, p := range []*entity.Product{&p1, &p2} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("create product: %v", err)
		}
	}
	if err := db.Create(&inventoryEntity.Inventory{ProductID: p1.ID, TotalQuantity: 7, AvailableQuantity: 7}).Error; err != nil {
		t.Fatalf("create inventory: %v", err)
	}

	got, err := repo.AvailableQuantities([]uint{p1.ID, p2.ID})
	if err != nil {
		t.Fatalf("available quantities: %v", err)
	}
	if got[p1.ID] != 7 {
		t.Errorf("expected 7 available for p1, got %d", got[p1.ID])
	}
	if _, ok := got[p2.ID]; ok {
		t.Error("p2 has no inventory row and should be absent")
	}

	if got, err := repo.AvailableQuantities(nil); err != nil || got != nil {
		t.Errorf("empty input should return nil, nil; got %v, %v", got, err)
	}
}

func TestAuthRepositoryTokens(t *testing.T) {
	db := modelTestDB(t)
	repo := authRepo.NewAuthRepository(db)

	user := entity.User{Username: "alice", Email: "a@example.com", PasswordHash: "x", Role: entity.RoleSales, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := repo.CreateToken(&entity.ApiToken{UserID: user.ID, Token: "tok-1"}); err != nil {
		t.Fatalf("create token: %v", err)
	}

	found, err := repo.FindActiveToken("tok-1")
	if err != nil {
		t.Fatalf("find token: %v", err)
	}
	if found.User == nil || found.User.Username != "alice" {
		t.Error("expected token to preload its user")
	}

	if err := repo.RevokeToken("tok-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := repo.FindActiveToken("tok-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("revoked token should not resolve, got %v", err)
	}
}

func TestAuthRepositoryInactiveUser(t *testing.T) {
	db := modelTestDB(t)
	repo := authRepo.NewAuthRepository(db)

	user := entity.User{Username: "bob", Email: "b@example.com", PasswordHash: "x", Role: entity.RoleUser, IsActive: false}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := repo.FindUserByUsername("bob"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("inactive user should not resolve, got %v", err)
	}
}

func TestOrderRepositoryCreateWithItems(t *testing.T) {
	db := modelTestDB(t)
	repo := salesRepo.NewOrderRepository(db)

	customer := entity.Customer{Name: "Acme"}
	user := entity.User{Username: "carol", Email: "c@example.com", PasswordHash: "x", Role: entity.RoleSales, IsActive: true}
	product := entity.Product{Model: "M1", AsusPn: "PN-1", BasePrice: decimal.NewFromInt(100), IsActive: true}
	db.Create(&customer)
	db.Create(&user)
	db.Create(&product)

	o := &salesEntity.Order{
		CustomerID:       customer.ID,
		UserID:           user.ID,
		PoNumber:         "PO-1",
		Status:           "Processing",
		TotalAmount:      decimal.NewFromInt(200),
		ShippingTerm:     "FOB",
		OrderDate:        time.Now(),
		AllocationStatus: salesEntity.AllocationPending,
		OrderItems: []salesEntity.OrderItem{
			{ProductID: product.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(100), Status: salesEntity.ItemPending},
		},
	}
	if err := repo.Create(o); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(o.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.OrderItems) != 1 {
		t.Fatalf("expected items created with the order, got %d", len(got.OrderItems))
	}
	if got.OrderItems[0].Product == nil || got.OrderItems[0].Product.Model != "M1" {
		t.Error("expected item product preloaded")
	}
	if got.Customer == nil || got.Customer.Name != "Acme" {
		t.Error("expected customer preloaded")
	}

	item, err := repo.FindItemByID(got.OrderItems[0].ID)
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if item.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", item.Quantity)
	}
}
