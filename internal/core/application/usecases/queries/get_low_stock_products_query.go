package queries

import (
	"errors"
	"math"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
)

// GetLowStockProductsQuery retrieves products whose stock quantity has
// fallen to or below a threshold.
type GetLowStockProductsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products running low on stock.
// The threshold must not be negative.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold < 0 {
		return GetLowStockProductsQuery{}, errs.NewValueIsOutOfRangeError(
			"threshold", threshold, 0, math.MaxInt)
	}

	return GetLowStockProductsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockProductsQueryIsNotConstructed if validation fails.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the stock quantity at or below which a product is
// considered low on stock.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}

// GetLowStockProductsQueryResponse is the read model of a product low on stock.
type GetLowStockProductsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity int
}
