package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrMoneyIsNegative indicates an attempt to construct a negative monetary amount.
// Prices, fees, and balances in the marketplace are never negative.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a value object representing a non-negative monetary amount.
// The amount is held as integer cents so that arithmetic is exact; monetary
// math never goes through floating point.
//
// The zero value is a valid amount of zero. Money is immutable; arithmetic
// methods return new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(10000) // $100.00
//	fee := price.Percent(500)                   // 5% -> $5.00
//	total := price.Add(fee)                     // $105.00
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an amount in cents.
// Returns ErrMoneyIsNegative if cents is negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// Zero returns a Money value of zero cents.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Percent returns the given fraction of the amount expressed in basis points
// (hundredths of a percent). 500 basis points is 5%. The result is rounded
// half up to the nearest cent.
func (m Money) Percent(basisPoints int64) Money {
	return Money{cents: (m.cents*basisPoints + 5000) / 10000}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as dollars with two decimal places, e.g. "105.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
