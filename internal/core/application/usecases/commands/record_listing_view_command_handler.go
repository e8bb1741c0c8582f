package commands

import (
	"context"
)

// RecordListingViewCommandHandler bumps listing view counters.
type RecordListingViewCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewRecordListingViewCommandHandler creates a handler for view counting.
func NewRecordListingViewCommandHandler(uowFactory ListingUoWFactory) RecordListingViewCommandHandler {
	return RecordListingViewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the view counter command.
func (h *RecordListingViewCommandHandler) Handle(ctx context.Context, cmd RecordListingViewCommand) error {
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

	if err := uow.ListingRepository().IncrementViews(ctx, cmd.ListingID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
