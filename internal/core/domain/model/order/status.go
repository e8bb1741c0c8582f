package order

import (
	"fmt"

	"agromarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Shipped ──> Completed
//	          │        │
//	          │        └──> Declined / Cancelled (stock restored)
//	          └──> Declined / Cancelled
//
// Who may request a transition is governed by the requested status, not the
// current one: Accepted, Declined and Shipped are farmer moves, Completed is
// a buyer move, Pending and Cancelled are open to either side of the order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a buyer places an order.
	// The farmer has not yet reacted to it.
	Pending

	// Accepted indicates the farmer agreed to fulfil the order.
	// Entering this status reserves the ordered quantity on the listing.
	Accepted

	// Declined indicates the farmer rejected the order.
	Declined

	// Shipped indicates the farmer handed the produce to delivery.
	Shipped

	// Completed indicates the buyer confirmed receipt.
	Completed

	// Cancelled indicates the order was called off.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Declined:  "declined",
		Shipped:   "shipped",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Declined:  "declined",
		Shipped:   "shipped",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus converts the wire representation of a status into a Status.
// Returns an error for unrecognized values.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the order's lifecycle.
func (s Status) IsTerminal() bool {
	return s == Declined || s == Completed || s == Cancelled
}

// actingParty identifies which side of an order must request a transition.
type actingParty int

const (
	anyParty actingParty = iota
	farmerParty
	buyerParty
)

// getTransitionParties returns, per requested status, the party whose
// identity must match the caller.
func getTransitionParties() map[Status]actingParty {
	//nolint:exhaustive // Unknown never appears as a requested status
	return map[Status]actingParty{
		Pending:   anyParty,
		Accepted:  farmerParty,
		Declined:  farmerParty,
		Shipped:   farmerParty,
		Completed: buyerParty,
		Cancelled: anyParty,
	}
}
