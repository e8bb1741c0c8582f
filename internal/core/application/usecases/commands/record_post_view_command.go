package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrRecordPostViewCommandIsNotConstructed = errors.New(
	"RecordPostViewCommand must be created via NewRecordPostViewCommand constructor",
)

// RecordPostViewCommand bumps a forum post's view counter.
type RecordPostViewCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordPostViewCommand creates a view counter command.
func NewRecordPostViewCommand(postID kernel.UUID) (RecordPostViewCommand, error) {
	cmd := RecordPostViewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPostID(postID); err != nil {
		return RecordPostViewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPostViewCommand) Validate() error {
	return c.guard.Validate(ErrRecordPostViewCommandIsNotConstructed)
}

// PostID returns the identifier of the viewed post.
func (c RecordPostViewCommand) PostID() kernel.UUID { return c.postID }

func (c *RecordPostViewCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}
