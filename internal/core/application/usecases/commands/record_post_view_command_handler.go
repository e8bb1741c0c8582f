package commands

import (
	"context"
)

// RecordPostViewCommandHandler bumps forum post view counters.
type RecordPostViewCommandHandler struct {
	uowFactory ForumUoWFactory
}

// NewRecordPostViewCommandHandler creates a handler for view counting.
func NewRecordPostViewCommandHandler(uowFactory ForumUoWFactory) RecordPostViewCommandHandler {
	return RecordPostViewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the view counter command.
func (h *RecordPostViewCommandHandler) Handle(ctx context.Context, cmd RecordPostViewCommand) error {
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

	if err := uow.ForumRepository().IncrementViews(ctx, cmd.PostID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
