package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrEditForumPostCommandIsNotConstructed = errors.New(
	"EditForumPostCommand must be created via NewEditForumPostCommand constructor",
)

// EditForumPostCommand represents an author's request to edit their post.
// Empty fields are left unchanged.
type EditForumPostCommand struct { //nolint:recvcheck //using for validation
	postID   kernel.UUID
	actorID  kernel.UUID
	title    string
	content  string
	category string

	guard guard.ConstructorGuard
}

// NewEditForumPostCommand creates a post edit command.
func NewEditForumPostCommand(
	postID, actorID kernel.UUID,
	title, content, category string,
) (EditForumPostCommand, error) {
	cmd := EditForumPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setActorID(actorID),
	); err != nil {
		return EditForumPostCommand{}, err
	}

	cmd.title = title
	cmd.content = content
	cmd.category = category
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditForumPostCommand) Validate() error {
	return c.guard.Validate(ErrEditForumPostCommandIsNotConstructed)
}

func (c EditForumPostCommand) PostID() kernel.UUID  { return c.postID }
func (c EditForumPostCommand) ActorID() kernel.UUID { return c.actorID }
func (c EditForumPostCommand) Title() string        { return c.title }
func (c EditForumPostCommand) Content() string      { return c.content }
func (c EditForumPostCommand) Category() string     { return c.category }

func (c *EditForumPostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *EditForumPostCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
