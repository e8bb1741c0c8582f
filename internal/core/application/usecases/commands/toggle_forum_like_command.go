package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrToggleForumLikeCommandIsNotConstructed = errors.New(
	"ToggleForumLikeCommand must be created via NewToggleForumLikeCommand constructor",
)

// ToggleForumLikeCommand represents a request to like a post, or to remove
// an existing like.
type ToggleForumLikeCommand struct { //nolint:recvcheck //using for validation
	postID kernel.UUID
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleForumLikeCommand creates a like toggle command.
func NewToggleForumLikeCommand(postID, userID kernel.UUID) (ToggleForumLikeCommand, error) {
	cmd := ToggleForumLikeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setUserID(userID),
	); err != nil {
		return ToggleForumLikeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleForumLikeCommand) Validate() error {
	return c.guard.Validate(ErrToggleForumLikeCommandIsNotConstructed)
}

func (c ToggleForumLikeCommand) PostID() kernel.UUID { return c.postID }
func (c ToggleForumLikeCommand) UserID() kernel.UUID { return c.userID }

func (c *ToggleForumLikeCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *ToggleForumLikeCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
