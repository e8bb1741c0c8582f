package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var (
	ErrCreateListingCommandIsNotConstructed = errors.New(
		"CreateListingCommand must be created via NewCreateListingCommand constructor",
	)
	ErrTitleIsRequired       = errors.New("title is required")
	ErrProduceTypeIsRequired = errors.New("produceType is required")
)

// CreateListingCommand represents a farmer's request to publish a produce
// listing.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	farmerID    kernel.UUID
	title       string
	description string
	produceType string
	price       kernel.Money
	quantity    kernel.Quantity
	unit        string
	location    kernel.Location
	imageURLs   []string

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to publish a new listing.
func NewCreateListingCommand(
	listingID, farmerID kernel.UUID,
	title, description, produceType string,
	price kernel.Money,
	quantity kernel.Quantity,
	unit string,
	location kernel.Location,
	imageURLs []string,
) (CreateListingCommand, error) {
	cmd := CreateListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setFarmerID(farmerID),
		cmd.setTitle(title),
		cmd.setProduceType(produceType),
	); err != nil {
		return CreateListingCommand{}, err
	}

	cmd.description = description
	cmd.price = price
	cmd.quantity = quantity
	cmd.unit = unit
	cmd.location = location
	cmd.imageURLs = imageURLs
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

func (c CreateListingCommand) ListingID() kernel.UUID    { return c.listingID }
func (c CreateListingCommand) FarmerID() kernel.UUID     { return c.farmerID }
func (c CreateListingCommand) Title() string             { return c.title }
func (c CreateListingCommand) Description() string       { return c.description }
func (c CreateListingCommand) ProduceType() string       { return c.produceType }
func (c CreateListingCommand) Price() kernel.Money       { return c.price }
func (c CreateListingCommand) Quantity() kernel.Quantity { return c.quantity }
func (c CreateListingCommand) Unit() string              { return c.unit }
func (c CreateListingCommand) Location() kernel.Location { return c.location }
func (c CreateListingCommand) ImageURLs() []string       { return c.imageURLs }

func (c *CreateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *CreateListingCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	c.farmerID = farmerID
	return nil
}

func (c *CreateListingCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateListingCommand) setProduceType(produceType string) error {
	if produceType == "" {
		return ErrProduceTypeIsRequired
	}
	c.produceType = produceType
	return nil
}
