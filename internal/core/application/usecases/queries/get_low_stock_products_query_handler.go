package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler retrieves products running low on stock
// from the database. Used by the low stock alert job to surface products
// that need replenishment.
//
// Example:
//
//	handler := NewGetLowStockProductsQueryHandler(db)
//	query, _ := NewGetLowStockProductsQuery(5)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get low stock products: %v", err)
//	    return err
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s has only %d left\n", p.Name, p.Quantity)
//	}
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products at or below the
// stock threshold. Results are sorted by quantity so the most depleted
// products come first.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]GetLowStockProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetLowStockProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity
		FROM products
		WHERE quantity <= ?
		ORDER BY quantity, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp GetLowStockProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&productResp.Name,
			&productResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID
		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
