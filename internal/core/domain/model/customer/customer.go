package customer

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when the supplied email is empty or malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
)

// Customer represents a buyer known to the ordering system.
// Orders hold a non-owning reference to a customer by its identifier;
// the customer itself carries only the identity data this module needs.
//
// Business rules:
//   - Customer must have a valid UUID, non-empty name, and a plausible email
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// email is the customer's contact address
	email string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified attributes.
// All parameters are validated; errors are aggregated so the caller sees
// every invalid field at once.
//
// Example:
//
//	customer, err := NewCustomer(kernel.NewUUID(), "Ada Lovelace", "ada@example.com")
//	if err != nil {
//	    // Handle validation error
//	}
func NewCustomer(id kernel.UUID, name string, email string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
// The restored customer behaves identically to one created through
// NewCustomer; the same validation rules apply.
func RestoreCustomer(id kernel.UUID, name string, email string) (*Customer, error) {
	return NewCustomer(id, name, email)
}

// Validate ensures the Customer instance was properly constructed.
// Returns ErrCustomerIsNotConstructed for zero-value instances.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}

	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email address.
func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	c.email = email
	return nil
}
