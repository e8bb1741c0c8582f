package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a buyer's request to order produce from a
// listing.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, listingID, buyerID, qty, "12 Airport Rd")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	listingID       kernel.UUID
	buyerID         kernel.UUID
	quantity        kernel.Quantity
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that all IDs are valid and the quantity is positive.
func NewCreateOrderCommand(
	orderID, listingID, buyerID kernel.UUID,
	quantity kernel.Quantity,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setListingID(listingID),
		cmd.setBuyerID(buyerID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.deliveryAddress = deliveryAddress
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ListingID returns the identifier of the listing being ordered.
func (c CreateOrderCommand) ListingID() kernel.UUID { return c.listingID }

// BuyerID returns the identifier of the purchasing account.
func (c CreateOrderCommand) BuyerID() kernel.UUID { return c.buyerID }

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() kernel.Quantity { return c.quantity }

// DeliveryAddress returns where the buyer wants delivery, possibly empty.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity kernel.Quantity) error {
	if quantity.IsZero() {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
