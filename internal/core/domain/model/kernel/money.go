package kernel

import (
	"fmt"
	"math"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or MoneyFromFloat.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromFloat constructors")

// ErrMoneyIsNegative is returned when a monetary amount below zero is supplied.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// Money represents a non-negative monetary amount stored in integer cents.
// Money is an immutable value object; storing cents keeps snapshot
// arithmetic exact and avoids floating point drift in persisted prices.
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(500)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: 5.00
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates Money from an amount in integer cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates Money from a decimal currency amount, rounding to
// the nearest cent. Returns an error if the amount is negative or not finite.
// Intended for transport boundaries that exchange decimal prices.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("money amount is not a finite number")
	}

	return NewMoney(int64(math.Round(amount * 100)))
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal currency value.
// Intended for transport boundaries; domain code should stay in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// MultiplyBy returns the amount for the given quantity of units.
// Returns an error if the quantity is not positive.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	return NewMoney(m.cents * int64(quantity))
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.cents + other.cents)
}

// IsEqual compares two monetary amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal string with two fraction digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
