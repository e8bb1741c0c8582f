package commands

import (
	"context"
)

// ToggleForumLikeCommandHandler handles like toggling on forum posts.
type ToggleForumLikeCommandHandler struct {
	uowFactory ForumUoWFactory
}

// NewToggleForumLikeCommandHandler creates a handler for like toggling.
func NewToggleForumLikeCommandHandler(uowFactory ForumUoWFactory) ToggleForumLikeCommandHandler {
	return ToggleForumLikeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the like toggle. Returns whether the post is liked by the
// user after the call.
func (h *ToggleForumLikeCommandHandler) Handle(ctx context.Context, cmd ToggleForumLikeCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	forumRepo := uow.ForumRepository()

	if _, err := forumRepo.GetPost(ctx, cmd.PostID()); err != nil {
		return false, err
	}

	liked, err := forumRepo.ToggleLike(ctx, cmd.PostID(), cmd.UserID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return liked, nil
}
