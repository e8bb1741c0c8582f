package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrDeleteMessageCommandIsNotConstructed = errors.New(
	"DeleteMessageCommand must be created via NewDeleteMessageCommand constructor",
)

// DeleteMessageCommand represents a sender's request to remove one of their
// own messages.
type DeleteMessageCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMessageCommand creates a message removal command.
func NewDeleteMessageCommand(messageID, actorID kernel.UUID) (DeleteMessageCommand, error) {
	cmd := DeleteMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMessageID(messageID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMessageCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMessageCommandIsNotConstructed)
}

func (c DeleteMessageCommand) MessageID() kernel.UUID { return c.messageID }
func (c DeleteMessageCommand) ActorID() kernel.UUID   { return c.actorID }

func (c *DeleteMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return err
	}
	c.messageID = messageID
	return nil
}

func (c *DeleteMessageCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
