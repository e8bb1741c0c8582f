package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrRecordListingViewCommandIsNotConstructed = errors.New(
	"RecordListingViewCommand must be created via NewRecordListingViewCommand constructor",
)

// RecordListingViewCommand bumps a listing's view counter. Views are a plain
// popularity signal; lost increments under concurrency are acceptable.
type RecordListingViewCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordListingViewCommand creates a view counter command.
func NewRecordListingViewCommand(listingID kernel.UUID) (RecordListingViewCommand, error) {
	cmd := RecordListingViewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setListingID(listingID); err != nil {
		return RecordListingViewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordListingViewCommand) Validate() error {
	return c.guard.Validate(ErrRecordListingViewCommandIsNotConstructed)
}

// ListingID returns the identifier of the viewed listing.
func (c RecordListingViewCommand) ListingID() kernel.UUID { return c.listingID }

func (c *RecordListingViewCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}
