package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var (
	ErrMarkConversationReadCommandIsNotConstructed = errors.New(
		"MarkConversationReadCommand must be created via NewMarkConversationReadCommand constructor",
	)
	ErrConversationIDIsRequired = errors.New("conversationID is required")
)

// MarkConversationReadCommand flags every message addressed to the reader in
// a conversation as read.
type MarkConversationReadCommand struct { //nolint:recvcheck //using for validation
	conversationID string
	readerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkConversationReadCommand creates a read-marking command.
func NewMarkConversationReadCommand(conversationID string, readerID kernel.UUID) (MarkConversationReadCommand, error) {
	cmd := MarkConversationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setConversationID(conversationID),
		cmd.setReaderID(readerID),
	); err != nil {
		return MarkConversationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkConversationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkConversationReadCommandIsNotConstructed)
}

func (c MarkConversationReadCommand) ConversationID() string { return c.conversationID }
func (c MarkConversationReadCommand) ReaderID() kernel.UUID  { return c.readerID }

func (c *MarkConversationReadCommand) setConversationID(conversationID string) error {
	if conversationID == "" {
		return ErrConversationIDIsRequired
	}
	c.conversationID = conversationID
	return nil
}

func (c *MarkConversationReadCommand) setReaderID(readerID kernel.UUID) error {
	if err := readerID.Validate(); err != nil {
		return err
	}
	c.readerID = readerID
	return nil
}
