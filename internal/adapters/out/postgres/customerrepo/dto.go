// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. This package implements the repository pattern
// for the customer entity, handling the conversion between domain entities
// and database representations.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain entity to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    customer.ID().Bytes(),
		Name:  customer.Name(),
		Email: customer.Email(),
	}
}

// toDomain converts a database DTO to a customer domain entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email)
}
