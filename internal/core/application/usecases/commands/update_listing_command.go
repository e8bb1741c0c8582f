package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrUpdateListingCommandIsNotConstructed = errors.New(
	"UpdateListingCommand must be created via NewUpdateListingCommand constructor",
)

// UpdateListingCommand represents a farmer's request to edit their own
// listing. Empty and nil fields are left unchanged; Active toggles owner
// visibility when set.
type UpdateListingCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	actorID     kernel.UUID
	title       string
	description string
	produceType string
	price       *kernel.Money
	quantity    *kernel.Quantity
	unit        string
	location    *kernel.Location
	imageURLs   []string
	active      *bool

	guard guard.ConstructorGuard
}

// NewUpdateListingCommand creates a listing update command.
func NewUpdateListingCommand(
	listingID, actorID kernel.UUID,
	title, description, produceType string,
	price *kernel.Money,
	quantity *kernel.Quantity,
	unit string,
	location *kernel.Location,
	imageURLs []string,
	active *bool,
) (UpdateListingCommand, error) {
	cmd := UpdateListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateListingCommand{}, err
	}

	cmd.title = title
	cmd.description = description
	cmd.produceType = produceType
	cmd.price = price
	cmd.quantity = quantity
	cmd.unit = unit
	cmd.location = location
	cmd.imageURLs = imageURLs
	cmd.active = active
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateListingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateListingCommandIsNotConstructed)
}

func (c UpdateListingCommand) ListingID() kernel.UUID     { return c.listingID }
func (c UpdateListingCommand) ActorID() kernel.UUID       { return c.actorID }
func (c UpdateListingCommand) Title() string              { return c.title }
func (c UpdateListingCommand) Description() string        { return c.description }
func (c UpdateListingCommand) ProduceType() string        { return c.produceType }
func (c UpdateListingCommand) Price() *kernel.Money       { return c.price }
func (c UpdateListingCommand) Quantity() *kernel.Quantity { return c.quantity }
func (c UpdateListingCommand) Unit() string               { return c.unit }
func (c UpdateListingCommand) Location() *kernel.Location { return c.location }
func (c UpdateListingCommand) ImageURLs() []string        { return c.imageURLs }
func (c UpdateListingCommand) Active() *bool              { return c.active }

func (c *UpdateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *UpdateListingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
