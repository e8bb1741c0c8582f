package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrSetUserStatusCommandIsNotConstructed = errors.New(
	"SetUserStatusCommand must be created via NewSetUserStatusCommand constructor",
)

// SetUserStatusCommand represents an admin request to activate or deactivate
// an account.
type SetUserStatusCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetUserStatusCommand creates an account status command.
func NewSetUserStatusCommand(userID kernel.UUID, active bool) (SetUserStatusCommand, error) {
	cmd := SetUserStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return SetUserStatusCommand{}, err
	}

	cmd.active = active
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetUserStatusCommandIsNotConstructed)
}

// UserID returns the identifier of the targeted account.
func (c SetUserStatusCommand) UserID() kernel.UUID { return c.userID }

// Active reports whether the account should be able to authenticate.
func (c SetUserStatusCommand) Active() bool { return c.active }

func (c *SetUserStatusCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
