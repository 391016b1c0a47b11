package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// GetAllByIDs retrieves all products matching the given identifiers in
	// one batch. Missing identifiers produce no error; the caller compares
	// the result against the request. No particular order of the returned
	// collection is guaranteed; callers must match products by identifier.
	// When running inside a transaction the returned rows are locked
	// against concurrent stock updates until the transaction ends.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// UpdateStock persists the stock quantities of the given products as
	// one batch.
	UpdateStock(ctx context.Context, products []*product.Product) error
}
