package product

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrQuantityIsNegative is returned when attempting to create a product with negative stock.
	ErrQuantityIsNegative = errs.NewValueIsInvalidError("quantity cannot be negative")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// NewInsufficientStockError reports a requested quantity exceeding the
// product's available stock. The message carries the product name so the
// caller can tell which line item failed.
func NewInsufficientStockError(name string) *errs.ValueIsInvalidError {
	return errs.NewValueIsInvalidError(fmt.Sprintf("insufficient quantity for product %s", name))
}

// Product represents a sellable item with a unit price and a mutable stock
// counter. The stock quantity is the available inventory; it never goes
// below zero.
//
// Business rules:
//   - Product must have a valid UUID, non-empty name, and constructed price
//   - Stock quantity must be zero or positive
//   - Stock is decreased only through DecreaseStock, which enforces the floor
//
// Example usage:
//
//	price, _ := kernel.NewMoney(500)
//	product, err := NewProduct(kernel.NewUUID(), "Keyboard", price, 10)
//	if err != nil {
//	    // Handle construction error
//	}
//	if err := product.DecreaseStock(3); err != nil {
//	    // Requested more than available
//	}
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the human-readable product name
	name string
	// price is the current unit price
	price kernel.Money
	// quantity is the available stock counter
	quantity int
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the specified attributes.
// All parameters are validated; errors are aggregated so the caller sees
// every invalid field at once.
func NewProduct(id kernel.UUID, name string, price kernel.Money, quantity int) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
// The restored product behaves identically to one created through
// NewProduct; the same validation rules apply.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, quantity int) (*Product, error) {
	return NewProduct(id, name, price, quantity)
}

// Validate ensures the Product instance was properly constructed.
// Returns ErrProductIsNotConstructed for zero-value instances.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}

	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Quantity returns the available stock quantity.
func (p *Product) Quantity() int {
	return p.quantity
}

// DecreaseStock reduces the available stock by the requested quantity.
//
// Business rules enforced:
//   - The requested quantity must be positive
//   - The resulting stock must not go below zero; on violation the stock
//     is left untouched and an insufficient-stock error naming the product
//     is returned
func (p *Product) DecreaseStock(requested int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if requested <= 0 {
		return errs.NewValueIsInvalidError("requested quantity must be greater than 0")
	}
	if p.quantity-requested < 0 {
		return NewInsufficientStockError(p.name)
	}

	p.quantity -= requested
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}
	p.quantity = quantity
	return nil
}
