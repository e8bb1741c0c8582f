package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrDeleteForumPostCommandIsNotConstructed = errors.New(
	"DeleteForumPostCommand must be created via NewDeleteForumPostCommand constructor",
)

// DeleteForumPostCommand represents a request to remove a forum post. Admins
// may remove any post, authors only their own.
type DeleteForumPostCommand struct { //nolint:recvcheck //using for validation
	postID  kernel.UUID
	actorID kernel.UUID
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewDeleteForumPostCommand creates a post removal command.
func NewDeleteForumPostCommand(postID, actorID kernel.UUID, isAdmin bool) (DeleteForumPostCommand, error) {
	cmd := DeleteForumPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeleteForumPostCommand{}, err
	}

	cmd.isAdmin = isAdmin
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteForumPostCommand) Validate() error {
	return c.guard.Validate(ErrDeleteForumPostCommandIsNotConstructed)
}

func (c DeleteForumPostCommand) PostID() kernel.UUID  { return c.postID }
func (c DeleteForumPostCommand) ActorID() kernel.UUID { return c.actorID }
func (c DeleteForumPostCommand) IsAdmin() bool        { return c.isAdmin }

func (c *DeleteForumPostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *DeleteForumPostCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
