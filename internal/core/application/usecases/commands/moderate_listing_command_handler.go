package commands

import (
	"context"
	"time"
)

// ModerateListingCommandHandler handles admin moderation of listings.
type ModerateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewModerateListingCommandHandler creates a handler for listing moderation.
func NewModerateListingCommandHandler(uowFactory ListingUoWFactory) ModerateListingCommandHandler {
	return ModerateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the moderation command.
func (h *ModerateListingCommandHandler) Handle(ctx context.Context, cmd ModerateListingCommand) error {
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

	listingRepo := uow.ListingRepository()

	aggregate, err := listingRepo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if err = aggregate.Moderate(cmd.Status(), cmd.Reason(), cmd.AdminID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = listingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
