package commands

import (
	"context"
	"time"

	"agromarket/internal/core/domain/model/forum"
)

// CreateForumPostCommandHandler handles forum thread creation. The author's
// display name is snapshotted onto the post.
type CreateForumPostCommandHandler struct {
	uowFactory ForumUoWFactory
}

// NewCreateForumPostCommandHandler creates a handler for post creation.
func NewCreateForumPostCommandHandler(uowFactory ForumUoWFactory) CreateForumPostCommandHandler {
	return CreateForumPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the post creation command.
func (h *CreateForumPostCommandHandler) Handle(ctx context.Context, cmd CreateForumPostCommand) error {
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

	author, err := uow.UserRepository().Get(ctx, cmd.AuthorID())
	if err != nil {
		return err
	}

	post, err := forum.NewPost(
		cmd.PostID(),
		author.ID(),
		author.Name(),
		cmd.Title(),
		cmd.Content(),
		cmd.Category(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ForumRepository().AddPost(ctx, post); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
