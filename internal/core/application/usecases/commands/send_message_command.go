package commands

import (
	"errors"
	"strings"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var (
	ErrSendMessageCommandIsNotConstructed = errors.New(
		"SendMessageCommand must be created via NewSendMessageCommand constructor",
	)
	ErrTextIsRequired = errors.New("text is required")
)

// SendMessageCommand represents a request to send a direct message.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	messageID  kernel.UUID
	senderID   kernel.UUID
	receiverID kernel.UUID
	text       string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a message sending command.
func NewSendMessageCommand(messageID, senderID, receiverID kernel.UUID, text string) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMessageID(messageID),
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setText(text),
	); err != nil {
		return SendMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

func (c SendMessageCommand) MessageID() kernel.UUID  { return c.messageID }
func (c SendMessageCommand) SenderID() kernel.UUID   { return c.senderID }
func (c SendMessageCommand) ReceiverID() kernel.UUID { return c.receiverID }
func (c SendMessageCommand) Text() string            { return c.text }

func (c *SendMessageCommand) setMessageID(messageID kernel.UUID) error {
	if err := messageID.Validate(); err != nil {
		return err
	}
	c.messageID = messageID
	return nil
}

func (c *SendMessageCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	c.senderID = senderID
	return nil
}

func (c *SendMessageCommand) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}
	c.receiverID = receiverID
	return nil
}

func (c *SendMessageCommand) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrTextIsRequired
	}
	c.text = text
	return nil
}
