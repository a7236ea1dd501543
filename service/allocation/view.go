package allocation

import (
	"time"

	inventoryEntity "github.com/zzrilakkuma/sales-activity-management-system/model/entity/inventory"
)

// View denormalizes an allocation for display: PO number, product model and
// customer name come from the joined context.
type View struct {
	ID                    uint      `json:"id"`
	OrderNumber           string    `json:"orderNumber"`
	Model                 string    `json:"model"`
	Quantity              int       `json:"quantity"`
	Customer              string    `json:"customer"`
	Status                string    `json:"status"`
	RequestDate           time.Time `json:"requestDate"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

func toView(a *inventoryEntity.Allocation) View {
	v := View{
		ID:                    a.ID,
		Quantity:              a.Quantity,
		Status:                a.Status,
		RequestDate:           a.AllocationDate,
		EstimatedDeliveryDate: a.EstimatedDeliveryDate,
	}
	if a.Inventory != nil && a.Inventory.Product != nil {
		v.Model = a.Inventory.Product.Model
	}
	if a.OrderItem != nil && a.OrderItem.Order != nil {
		v.OrderNumber = a.OrderItem.Order.PoNumber
		if a.OrderItem.Order.Customer != nil {
			v.Customer = a.OrderItem.Order.Customer.Name
		}
	}
	return v
}
