package allocation

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
	salesEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/sales"
	"github.com/zzrilakkuma/sales-activity-management-system/model/repository"
	inventoryRepo "github.com/zzrilakkuma/sales-activity-management-system/model/repository/inventory"
)

var (
	// ErrInvalidQuantity rejects non-positive quantities before any DB work.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInsufficientStock means the inventory row has fewer available units than requested.
	ErrInsufficientStock = errors.New("insufficient inventory")
	// ErrExceedsOrdered means the allocation would push an order item past its ordered quantity.
	ErrExceedsOrdered = errors.New("allocation exceeds ordered quantity")
	// ErrInvalidStatus rejects unknown allocation statuses.
	ErrInvalidStatus = errors.New("invalid allocation status")
)

// DefaultDeliveryLeadTime is applied when no estimated delivery date is supplied.
const DefaultDeliveryLeadTime = 7 * 24 * time.Hour

// AllocateInput is the schema-validated request for a single allocation.
type AllocateInput struct {
	InventoryID           uint       `json:"inventoryId"`
	OrderItemID           uint       `json:"orderItemId"`
	Quantity              int        `json:"quantity"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
}

// Allocate assigns quantity units of an inventory record to an order item.
// The inventory decrement, the order item increment and the ledger insert
// happen in one transaction; the inventory row is locked for the duration
// so concurrent requests against the same stock serialize.
//
// Allocate is a ledger append, not an upsert: calling it twice with the
// same arguments produces two entries and double the quantity effect.
func Allocate(db *gorm.DB, in AllocateInput) (*View, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	estimated := time.Now().Add(DefaultDeliveryLeadTime)
	if in.EstimatedDeliveryDate != nil {
		estimated = *in.EstimatedDeliveryDate
	}

	var created inventoryEntity.Allocation
	err := repository.WithTransaction(db, func(tx *gorm.DB) error {
		var inv inventoryEntity.Inventory
		err := repository.ForUpdate(tx).First(&inv, in.InventoryID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("inventory %d: %w", in.InventoryID, gorm.ErrRecordNotFound)
			}
			return fmt.Errorf("load inventory: %w", err)
		}

		if inv.AvailableQuantity < in.Quantity {
			return ErrInsufficientStock
		}

		var item salesEntity.OrderItem
		err = repository.ForUpdate(tx).First(&item, in.OrderItemID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order item %d: %w", in.OrderItemID, gorm.ErrRecordNotFound)
			}
			return fmt.Errorf("load order item: %w", err)
		}

		if item.AllocatedQuantity+in.Quantity > item.Quantity {
			return ErrExceedsOrdered
		}

		err = tx.Model(&inv).Updates(map[string]interface{}{
			"allocated_quantity": inv.AllocatedQuantity + in.Quantity,
			"available_quantity": inv.AvailableQuantity - in.Quantity,
		}).Error
		if err != nil {
			return fmt.Errorf("update inventory: %w", err)
		}

		err = tx.Model(&item).
			Update("allocated_quantity", item.AllocatedQuantity+in.Quantity).Error
		if err != nil {
			return fmt.Errorf("update order item: %w", err)
		}

		created = inventoryEntity.Allocation{
			InventoryID:           in.InventoryID,
			OrderItemID:           in.OrderItemID,
			Quantity:              in.Quantity,
			Status:                inventoryEntity.StatusPending,
			EstimatedDeliveryDate: estimated,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("create allocation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadView(db, created.ID)
}

// SetStatus replaces an allocation's lifecycle status. Any status may follow
// any other; inventory and order item counters are never touched.
func SetStatus(db *gorm.DB, id uint, status string) (*View, error) {
	if !inventoryEntity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	repo := inventoryRepo.NewAllocationRepository(db)
	if err := repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("allocation %d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("update allocation status: %w", err)
	}

	return loadView(db, id)
}

// Report is the allocation list with its derived summary counts. The counts
// always match what filtering Allocations by status would produce.
type Report struct {
	TotalAllocations      int    `json:"totalAllocations"`
	PendingAllocations    int    `json:"pendingAllocations"`
	CompletedAllocations  int    `json:"completedAllocations"`
	InProgressAllocations int    `json:"inProgressAllocations"`
	Allocations           []View `json:"allocations"`
}

// List returns every allocation with joined context, newest first.
func List(db *gorm.DB) (*Report, error) {
	repo := inventoryRepo.NewAllocationRepository(db)
	allocations, err := repo.ListWithContext()
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}

	report := &Report{
		TotalAllocations: len(allocations),
		Allocations:      make([]View, 0, len(allocations)),
	}
	for i := range allocations {
		switch allocations[i].Status {
		case inventoryEntity.StatusPending:
			report.PendingAllocations++
		case inventoryEntity.StatusInProgress:
			report.InProgressAllocations++
		case inventoryEntity.StatusCompleted:
			report.CompletedAllocations++
		}
		report.Allocations = append(report.Allocations, toView(&allocations[i]))
	}
	return report, nil
}

func loadView(db *gorm.DB, id uint) (*View, error) {
	repo := inventoryRepo.NewAllocationRepository(db)
	a, err := repo.FindByIDWithContext(id)
	if err != nil {
		return nil, fmt.Errorf("load allocation %d: %w", id, err)
	}
	v := toView(a)
	return &v, nil
}
