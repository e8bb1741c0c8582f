package commands

import (
	"errors"
	"strings"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrAddForumCommentCommandIsNotConstructed = errors.New(
	"AddForumCommentCommand must be created via NewAddForumCommentCommand constructor",
)

// AddForumCommentCommand represents a request to reply to a forum post.
type AddForumCommentCommand struct { //nolint:recvcheck //using for validation
	commentID kernel.UUID
	postID    kernel.UUID
	authorID  kernel.UUID
	content   string

	guard guard.ConstructorGuard
}

// NewAddForumCommentCommand creates a comment command.
func NewAddForumCommentCommand(
	commentID, postID, authorID kernel.UUID,
	content string,
) (AddForumCommentCommand, error) {
	cmd := AddForumCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCommentID(commentID),
		cmd.setPostID(postID),
		cmd.setAuthorID(authorID),
		cmd.setContent(content),
	); err != nil {
		return AddForumCommentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddForumCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddForumCommentCommandIsNotConstructed)
}

func (c AddForumCommentCommand) CommentID() kernel.UUID { return c.commentID }
func (c AddForumCommentCommand) PostID() kernel.UUID    { return c.postID }
func (c AddForumCommentCommand) AuthorID() kernel.UUID  { return c.authorID }
func (c AddForumCommentCommand) Content() string        { return c.content }

func (c *AddForumCommentCommand) setCommentID(commentID kernel.UUID) error {
	if err := commentID.Validate(); err != nil {
		return err
	}
	c.commentID = commentID
	return nil
}

func (c *AddForumCommentCommand) setPostID(postID kernel.UUID) error {
	if err := postID.Validate(); err != nil {
		return err
	}
	c.postID = postID
	return nil
}

func (c *AddForumCommentCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}
	c.authorID = authorID
	return nil
}

func (c *AddForumCommentCommand) setContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentIsRequired
	}
	c.content = content
	return nil
}
