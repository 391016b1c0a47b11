// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its line items are written together; the
// line items live in their own table, keyed back to the order.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer reference is indexed for per-customer order lookups.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row belonging to an order.
// PriceCents is the unit price snapshot taken when the order was created.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID `gorm:"type:uuid"`
	PriceCents int64
	Quantity   int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line item rows get fresh surrogate keys; the domain model has no identity
// for line items beyond their owning order.
func fromDomain(order *order.Order) OrderDTO {
	lineItems := order.LineItems()
	items := make([]OrderItemDTO, 0, len(lineItems))
	for _, item := range lineItems {
		items = append(items, OrderItemDTO{
			ID:         uuid.New(),
			OrderID:    order.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			PriceCents: item.Price().Cents(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:         order.ID().Bytes(),
		CustomerID: order.CustomerID().Bytes(),
		Items:      items,
		CreatedAt:  order.CreatedAt(),
		UpdatedAt:  order.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoney(item.PriceCents)
		if itemErr != nil {
			return nil, itemErr
		}

		lineItem, itemErr := order.NewLineItem(productID, price, item.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(id, customerID, lineItems, dto.CreatedAt, dto.UpdatedAt)
}
