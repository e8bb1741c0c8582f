package kernel

import (
	"fmt"
	"math"

	"agromarket/internal/pkg/errs"
)

// Quantity is a non-negative amount of produce, in whatever unit the listing
// advertises (kg, bags, crates). Listings hold the remaining stock as a
// Quantity; orders hold the requested amount.
type Quantity struct {
	value float64
}

// NewQuantity creates a Quantity. Returns a validation error for negative or
// non-finite values. Zero is valid: a sold-out listing has quantity zero.
func NewQuantity(value float64) (Quantity, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not a finite number", value))
	}
	if value < 0 {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, 0.0, math.MaxFloat64)
	}
	return Quantity{value: value}, nil
}

// Value returns the numeric amount.
func (q Quantity) Value() float64 {
	return q.value
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// Less reports whether q is strictly smaller than other.
func (q Quantity) Less(other Quantity) bool {
	return q.value < other.value
}

// Add returns the sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// Sub returns q minus other. Subtracting below zero is a programming error on
// the caller's side and is reported as an out-of-range error.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if other.value > q.value {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", q.value-other.value, 0.0, q.value)
	}
	return Quantity{value: q.value - other.value}, nil
}

// IsEqual reports whether two quantities are identical.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return fmt.Sprintf("%g", q.value)
}
