package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired     = errors.New("order must contain at least one item")
	ErrOrderItemQuantityInvalid  = errors.New("order item quantity must be greater than 0")
	ErrOrderItemProductDuplicate = errors.New("order items must reference distinct products")
)

// OrderItem is one requested product within a CreateOrderCommand:
// which product and how many units.
type OrderItem struct {
	productID kernel.UUID
	quantity  int
}

// NewOrderItem creates a requested order position.
// The product ID must be valid and the quantity positive.
func NewOrderItem(productID kernel.UUID, quantity int) (OrderItem, error) {
	if err := productID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, ErrOrderItemQuantityInvalid
	}

	return OrderItem{
		productID: productID,
		quantity:  quantity,
	}, nil
}

// ProductID returns the identifier of the requested product.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested number of units.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a request to place a new order: a customer
// plus one or more requested products with quantities.
//
// Items must reference distinct products. Duplicate product references are
// rejected at construction because the stock check would otherwise count
// the same row twice.
//
// Example:
//
//	item, _ := NewOrderItem(productID, 3)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, []OrderItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", placed.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid and at least one item with a
// distinct product reference is requested.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []OrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the purchasing customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order positions.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.productID.Validate(); err != nil {
			return err
		}
		if item.quantity <= 0 {
			return ErrOrderItemQuantityInvalid
		}
		if _, ok := seen[item.productID]; ok {
			return ErrOrderItemProductDuplicate
		}
		seen[item.productID] = struct{}{}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}
