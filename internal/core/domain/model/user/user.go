package user

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the account aggregate. Farmers, buyers, and admins are all Users
// distinguished by Role.
//
// Invariants:
//   - id is a valid UUID
//   - email and name are non-empty
//   - role is one of the valid roles
//   - a deactivated user keeps their data but cannot authenticate
type User struct {
	id           kernel.UUID
	email        string
	name         string
	phone        string
	passwordHash string
	role         Role
	location     kernel.Location
	bio          string
	verified     bool
	verifiedAt   *time.Time
	active       bool
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewUser creates an account in active, unverified state.
func NewUser(
	id kernel.UUID,
	email, name, phone, passwordHash string,
	role Role,
	location kernel.Location,
	now time.Time,
) (*User, error) {
	u := &User{
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	u.location = location
	return u, nil
}

// RestoreUser reconstructs a User from persistence. All invariants are
// re-checked so corrupt rows surface as errors instead of invalid aggregates.
func RestoreUser(
	id kernel.UUID,
	email, name, phone, passwordHash string,
	role Role,
	location kernel.Location,
	bio string,
	verified bool,
	verifiedAt *time.Time,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		bio:           bio,
		verified:      verified,
		verifiedAt:    verifiedAt,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	u.location = location
	return u, nil
}

// Validate ensures the User was constructed through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identity.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string { return u.phone }

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the account role.
func (u *User) Role() Role { return u.role }

// Location returns the user's advertised location.
func (u *User) Location() kernel.Location { return u.location }

// Bio returns the user's profile text, possibly empty.
func (u *User) Bio() string { return u.bio }

// Verified reports whether the user confirmed their email address.
func (u *User) Verified() bool { return u.verified }

// VerifiedAt returns when the email was confirmed, nil if never.
func (u *User) VerifiedAt() *time.Time { return u.verifiedAt }

// Active reports whether the account may authenticate.
func (u *User) Active() bool { return u.active }

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last mutation time.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Verify marks the email address as confirmed. Verifying twice re-stamps the
// confirmation time.
func (u *User) Verify(now time.Time) {
	u.verified = true
	u.verifiedAt = &now
	u.updatedAt = now
}

// SetActive activates or deactivates the account (admin moderation).
func (u *User) SetActive(active bool, now time.Time) {
	u.active = active
	u.updatedAt = now
}

// ChangeRole reassigns the account role (admin operation).
func (u *User) ChangeRole(role Role, now time.Time) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	u.updatedAt = now
	return nil
}

// UpdateProfile applies the profile fields a user may edit themselves. Empty
// name and phone leave the current values in place, matching the partial
// update the API exposes; bio may be cleared.
func (u *User) UpdateProfile(name, phone string, location *kernel.Location, bio *string, now time.Time) {
	if name != "" {
		u.name = name
	}
	if phone != "" {
		u.phone = phone
	}
	if location != nil {
		u.location = *location
	}
	if bio != nil {
		u.bio = *bio
	}
	u.updatedAt = now
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
