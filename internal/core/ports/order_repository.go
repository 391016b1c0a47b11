package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written once, together with their line items, and read back
// by identifier.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items as one unit.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
