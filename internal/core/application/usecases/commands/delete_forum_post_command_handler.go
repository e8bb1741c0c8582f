package commands

import (
	"context"

	"agromarket/internal/pkg/errs"
)

// DeleteForumPostCommandHandler handles forum post removal.
type DeleteForumPostCommandHandler struct {
	uowFactory ForumUoWFactory
}

// NewDeleteForumPostCommandHandler creates a handler for post removal.
func NewDeleteForumPostCommandHandler(uowFactory ForumUoWFactory) DeleteForumPostCommandHandler {
	return DeleteForumPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the post removal command.
func (h *DeleteForumPostCommandHandler) Handle(ctx context.Context, cmd DeleteForumPostCommand) error {
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

	post, err := forumRepo.GetPost(ctx, cmd.PostID())
	if err != nil {
		return err
	}

	if !cmd.IsAdmin() && !post.IsAuthor(cmd.ActorID()) {
		return errs.NewNotAuthorizedError("only the author can remove a post")
	}

	if err = forumRepo.DeletePost(ctx, cmd.PostID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
