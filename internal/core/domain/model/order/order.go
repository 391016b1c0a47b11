package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineItemsAreRequired is returned when attempting to create an order without line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("order must contain at least one line item")
)

// Order represents a persisted customer purchase. It is the aggregate root
// owning its line items; the customer is referenced by identifier only.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference exactly one valid customer
//   - Must contain at least one line item at creation
//   - Line items are created with the order and never change afterwards
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated constructors. Orders have no lifecycle
// beyond creation in this module: no update or delete operation exists.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// lineItems are the ordered products with snapshotted prices
	lineItems []LineItem

	// createdAt and updatedAt are persistence timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order for a customer with the given line items.
// This is the only way to create a fresh order, ensuring all business
// invariants are maintained. Both timestamps are set to the current time.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the purchasing customer (must be valid UUID)
//   - lineItems: Ordered products (must not be empty, each must be constructed)
//
// Example:
//
//	price, _ := kernel.NewMoney(500)
//	item, _ := NewLineItem(productID, price, 3)
//	order, err := NewOrder(kernel.NewUUID(), customerID, []LineItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, customerID kernel.UUID, lineItems []LineItem) (*Order, error) {
	now := time.Now().UTC()

	return newOrder(id, customerID, lineItems, now, now)
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its original timestamps. The restored order behaves
// identically to one created through NewOrder.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	return newOrder(id, customerID, lineItems, createdAt, updatedAt)
}

func newOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing
// orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// LineItems returns a copy of the order's line items.
// The copy keeps the aggregate's internal state immutable from outside.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the order's last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total returns the order total across all line items.
func (o *Order) Total() (kernel.Money, error) {
	total, err := kernel.NewMoney(0)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.lineItems {
		lineTotal, itemErr := item.Total()
		if itemErr != nil {
			return kernel.Money{}, itemErr
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setLineItems validates and stores the line items.
// An order must own at least one constructed line item.
func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
