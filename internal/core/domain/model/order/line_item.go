package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrLineItemQuantityIsInvalid is returned when a line item quantity is not positive.
	ErrLineItemQuantityIsInvalid = errs.NewValueIsInvalidError("line item quantity must be greater than 0")
	// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem associates one product with an order. It carries the quantity
// requested and the product's price snapshotted at the moment of order
// creation. The snapshot is a deliberate denormalization: historical
// orders are immune to future price changes.
//
// LineItem is an immutable value object owned by its Order aggregate.
type LineItem struct {
	// productID references the ordered product
	productID kernel.UUID
	// price is the unit price at the moment the order was created
	price kernel.Money
	// quantity is the number of units ordered (always positive)
	quantity int
	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a line item pairing a product with its snapshotted
// price and a positive quantity.
//
// Example:
//
//	price, _ := kernel.NewMoney(500)
//	item, err := NewLineItem(productID, price, 3)
//	if err != nil {
//	    // Handle validation error
//	}
func NewLineItem(productID kernel.UUID, price kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Price returns the unit price snapshotted at order creation.
func (li LineItem) Price() kernel.Money {
	return li.price
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns the line total (unit price times quantity).
func (li LineItem) Total() (kernel.Money, error) {
	return li.price.MultiplyBy(li.quantity)
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	li.price = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrLineItemQuantityIsInvalid
	}
	li.quantity = quantity
	return nil
}
