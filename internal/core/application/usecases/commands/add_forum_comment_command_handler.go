package commands

import (
	"context"
	"time"

	"agromarket/internal/core/domain/model/forum"
)

// AddForumCommentCommandHandler handles replies on forum posts. The reply
// row and the post's comment counter move in the same transaction.
type AddForumCommentCommandHandler struct {
	uowFactory ForumUoWFactory
}

// NewAddForumCommentCommandHandler creates a handler for forum replies.
func NewAddForumCommentCommandHandler(uowFactory ForumUoWFactory) AddForumCommentCommandHandler {
	return AddForumCommentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the comment command.
func (h *AddForumCommentCommandHandler) Handle(ctx context.Context, cmd AddForumCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	forumRepo := uow.ForumRepository()

	if _, err := forumRepo.GetPost(ctx, cmd.PostID()); err != nil {
		return err
	}

	author, err := uow.UserRepository().Get(ctx, cmd.AuthorID())
	if err != nil {
		return err
	}

	comment, err := forum.NewComment(
		cmd.CommentID(),
		cmd.PostID(),
		author.ID(),
		author.Name(),
		cmd.Content(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = forumRepo.AddComment(ctx, comment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
