package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired     = errors.New("product name is required")
	ErrProductQuantityIsNegative = errors.New("product quantity cannot be negative")
)

// CreateProductCommand represents a request to add a new product with its
// unit price and initial stock quantity.
//
// Example:
//
//	price, _ := kernel.NewMoney(500)
//	cmd, err := NewCreateProductCommand(kernel.NewUUID(), "Keyboard", price, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a new product.
// Validates that the product ID and price are constructed, the name is not
// empty, and the initial quantity is not negative.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	quantity int,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
		productCommand.setQuantity(quantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product's unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Quantity returns the initial stock quantity.
func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrProductQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
