package commands

import (
	"context"
	"time"
)

// EditForumPostCommandHandler handles post edits by their author.
type EditForumPostCommandHandler struct {
	uowFactory ForumUoWFactory
}

// NewEditForumPostCommandHandler creates a handler for post edits.
func NewEditForumPostCommandHandler(uowFactory ForumUoWFactory) EditForumPostCommandHandler {
	return EditForumPostCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the post edit command.
func (h *EditForumPostCommandHandler) Handle(ctx context.Context, cmd EditForumPostCommand) error {
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

	if err = post.Edit(cmd.ActorID(), cmd.Title(), cmd.Content(), cmd.Category(), time.Now().UTC()); err != nil {
		return err
	}

	if err = forumRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
