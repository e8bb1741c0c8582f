package commands

import (
	"errors"
	"strings"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var (
	ErrCreateForumPostCommandIsNotConstructed = errors.New(
		"CreateForumPostCommand must be created via NewCreateForumPostCommand constructor",
	)
	ErrContentIsRequired = errors.New("content is required")
)

// CreateForumPostCommand represents a request to start a forum thread.
type CreateForumPostCommand struct { //nolint:recvcheck //using for validation
	postID   kernel.UUID
	authorID kernel.UUID
	title    string
	content  string
	category string

	guard guard.ConstructorGuard
}

// NewCreateForumPostCommand creates a post creation command.
func NewCreateForumPostCommand(
	postID, authorID kernel.UUID,
	title, content, category string,
) (CreateForumPostCommand, error) {
	cmd := CreateForumPostCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPostID(postID),
		cmd.setAuthorID(authorID),
		cmd.setTitle(title),
		cmd.setContent(content),
	); err != nil {
		return CreateForumPostCommand{}, err
	}

	cmd.category = category
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateForumPostCommand) Validate() error {
	return c.guard.Validate(ErrCreateForumPostCommandIsNotConstructed)
}

func (c CreateForumPostCommand) PostID() kernel.UUID   { return c.postID }
func (c CreateForumPostCommand) AuthorID() kernel.UUID { return c.authorID }
func (c CreateForumPostCommand) Title() string         { return c.title }
func (c CreateForumPostCommand) Content() string       { return c.content }
func (c CreateForumPostCommand) Category() string      { return c.category }

func (c *CreateForumPostCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *CreateForumPostCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}
	c.authorID = authorID
	return nil
}

func (c *CreateForumPostCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateForumPostCommand) setContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentIsRequired
	}
	c.content = content
	return nil
}
