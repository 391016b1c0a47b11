package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a persisted order with its line items
// from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
//	fmt.Printf("Order %s total: %s\n", order.ID, total)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order by identifier.
// Returns errs.ObjectNotFoundError when no order with the given
// identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	orderRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer orderRows.Close()

	if !orderRows.Next() {
		if err = orderRows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError(
			"order", query.OrderID().String())
	}

	var id, customerID uuid.UUID
	var createdAt, updatedAt time.Time

	err = orderRows.Scan(
		&id,
		&customerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}
	response.ID = orderID

	orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}
	response.CustomerID = orderCustomerID
	response.CreatedAt = createdAt
	response.UpdatedAt = updatedAt

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			price_cents,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var productID uuid.UUID
		var priceCents int64
		var quantity int

		err = rows.Scan(
			&productID,
			&priceCents,
			&quantity,
		)
		if err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = itemProductID

		price, priceErr := kernel.NewMoney(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = price
		item.Quantity = quantity
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
