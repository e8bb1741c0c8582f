package kernel

import (
	"fmt"
	"math"

	"agromarket/internal/pkg/errs"
)

// Money is a non-negative amount in naira. Prices and order totals are
// expressed in it.
//
// The zero value (zero naira) is valid: a listing may be free. Negative
// amounts are rejected at construction.
type Money struct {
	amount float64
}

// NewMoney creates a Money value. Returns a validation error for negative or
// non-finite amounts.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0.0, math.MaxFloat64)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in naira.
func (m Money) Amount() float64 {
	return m.amount
}

// Mul returns the total price for a quantity at this per-unit price.
func (m Money) Mul(q Quantity) Money {
	return Money{amount: m.amount * q.Value()}
}

// IsEqual reports whether two amounts are identical.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String implements fmt.Stringer using the plain numeric form.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
