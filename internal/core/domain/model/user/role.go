package user

import (
	"fmt"

	"agromarket/internal/pkg/errs"
)

// Role classifies an account on the marketplace. It replaces the original
// string-keyed role checks with an enum so authorization tables can be
// exhaustively matched.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleFarmer sells produce: owns listings and fulfils orders.
	RoleFarmer

	// RoleBuyer purchases produce: places and completes orders.
	RoleBuyer

	// RoleAdmin moderates users, listings, and reads platform statistics.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleFarmer:  "farmer",
		RoleBuyer:   "buyer",
		RoleAdmin:   "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleFarmer: "farmer",
		RoleBuyer:  "buyer",
		RoleAdmin:  "admin",
	}
}

// ParseRole converts a wire string ("farmer", "buyer", "admin") into a Role.
// Unrecognized strings are rejected with a validation error.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role. It implements
// fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
