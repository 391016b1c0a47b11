// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Prices are stored as integer cents so stock and
// pricing arithmetic stays exact across the persistence boundary.
package productrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// Quantity is the available stock counter, indexed so the low stock query
// can scan efficiently.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	PriceCents int64
	Quantity   int `gorm:"index"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:         product.ID().Bytes(),
		Name:       product.Name(),
		PriceCents: product.Price().Cents(),
		Quantity:   product.Quantity(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, dto.Quantity)
}
