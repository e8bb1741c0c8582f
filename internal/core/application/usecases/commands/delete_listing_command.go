package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrDeleteListingCommandIsNotConstructed = errors.New(
	"DeleteListingCommand must be created via NewDeleteListingCommand constructor",
)

// DeleteListingCommand represents a request to remove a listing. Admins may
// remove any listing, farmers only their own.
type DeleteListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	actorID   kernel.UUID
	isAdmin   bool

	guard guard.ConstructorGuard
}

// NewDeleteListingCommand creates a listing removal command.
func NewDeleteListingCommand(listingID, actorID kernel.UUID, isAdmin bool) (DeleteListingCommand, error) {
	cmd := DeleteListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteListingCommand{}, err
	}

	cmd.isAdmin = isAdmin
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteListingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteListingCommandIsNotConstructed)
}

func (c DeleteListingCommand) ListingID() kernel.UUID { return c.listingID }
func (c DeleteListingCommand) ActorID() kernel.UUID   { return c.actorID }
func (c DeleteListingCommand) IsAdmin() bool          { return c.isAdmin }

func (c *DeleteListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *DeleteListingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
