package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrWithdrawOrderCommandIsNotConstructed = errors.New(
	"WithdrawOrderCommand must be created via NewWithdrawOrderCommand constructor",
)

// WithdrawOrderCommand represents a buyer's request to withdraw a pending
// order before the farmer reacts to it.
type WithdrawOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawOrderCommand creates a withdrawal command.
func NewWithdrawOrderCommand(orderID, actorID kernel.UUID) (WithdrawOrderCommand, error) {
	cmd := WithdrawOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return WithdrawOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOrderCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to withdraw.
func (c WithdrawOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorID returns the identifier of the requesting account.
func (c WithdrawOrderCommand) ActorID() kernel.UUID { return c.actorID }

func (c *WithdrawOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *WithdrawOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
