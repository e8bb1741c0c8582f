package listing

import (
	"fmt"

	"agromarket/internal/pkg/errs"
)

// Status represents the visibility state of a listing.
//
// Active listings appear in the public catalogue and accept orders.
// Inactive listings are hidden by their owner. Suspended listings are
// hidden by an admin and only an admin can lift the suspension.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active listings are publicly visible and orderable.
	Active

	// Inactive listings were hidden by the owning farmer.
	Inactive

	// Suspended listings were hidden by an admin during moderation.
	Suspended
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Inactive:  "inactive",
		Suspended: "suspended",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "active",
		Inactive:  "inactive",
		Suspended: "suspended",
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
		fmt.Errorf("%q is not a valid listing status", s),
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
