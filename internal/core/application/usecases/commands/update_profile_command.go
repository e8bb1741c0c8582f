package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a request by a user to edit their own
// profile. Nil and empty fields are left unchanged.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	phone    string
	location *kernel.Location
	bio      *string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a profile update command.
func NewUpdateProfileCommand(
	userID kernel.UUID,
	name, phone string,
	location *kernel.Location,
	bio *string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return UpdateProfileCommand{}, err
	}

	cmd.name = name
	cmd.phone = phone
	cmd.location = location
	cmd.bio = bio
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID        { return c.userID }
func (c UpdateProfileCommand) Name() string               { return c.name }
func (c UpdateProfileCommand) Phone() string              { return c.phone }
func (c UpdateProfileCommand) Location() *kernel.Location { return c.location }
func (c UpdateProfileCommand) Bio() *string               { return c.bio }

func (c *UpdateProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
