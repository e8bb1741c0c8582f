package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrVerifyUserCommandIsNotConstructed = errors.New(
	"VerifyUserCommand must be created via NewVerifyUserCommand constructor",
)

// VerifyUserCommand represents an admin request to mark an account as a
// verified seller.
type VerifyUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyUserCommand creates a verification command.
func NewVerifyUserCommand(userID kernel.UUID) (VerifyUserCommand, error) {
	cmd := VerifyUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return VerifyUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyUserCommand) Validate() error {
	return c.guard.Validate(ErrVerifyUserCommandIsNotConstructed)
}

// UserID returns the identifier of the account to verify.
func (c VerifyUserCommand) UserID() kernel.UUID { return c.userID }

func (c *VerifyUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
