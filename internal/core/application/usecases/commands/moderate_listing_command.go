package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/pkg/guard"
)

var ErrModerateListingCommandIsNotConstructed = errors.New(
	"ModerateListingCommand must be created via NewModerateListingCommand constructor",
)

// ModerateListingCommand represents an admin request to change a listing's
// visibility, including suspension with a recorded reason.
type ModerateListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	adminID   kernel.UUID
	status    listing.Status
	reason    string

	guard guard.ConstructorGuard
}

// NewModerateListingCommand creates a moderation command.
func NewModerateListingCommand(
	listingID, adminID kernel.UUID,
	status listing.Status,
	reason string,
) (ModerateListingCommand, error) {
	cmd := ModerateListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setAdminID(adminID),
		cmd.setStatus(status),
	); err != nil {
		return ModerateListingCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ModerateListingCommand) Validate() error {
	return c.guard.Validate(ErrModerateListingCommandIsNotConstructed)
}

func (c ModerateListingCommand) ListingID() kernel.UUID { return c.listingID }
func (c ModerateListingCommand) AdminID() kernel.UUID   { return c.adminID }
func (c ModerateListingCommand) Status() listing.Status { return c.status }
func (c ModerateListingCommand) Reason() string         { return c.reason }

func (c *ModerateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *ModerateListingCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	c.adminID = adminID
	return nil
}

func (c *ModerateListingCommand) setStatus(status listing.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
