package commands

import (
	"context"
	"time"

	"agromarket/internal/pkg/errs"
)

// UpdateListingCommandHandler handles listing edits by their owner.
type UpdateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewUpdateListingCommandHandler creates a handler for listing edits.
func NewUpdateListingCommandHandler(uowFactory ListingUoWFactory) UpdateListingCommandHandler {
	return UpdateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing update command. Only the owning farmer may
// edit a listing.
func (h *UpdateListingCommandHandler) Handle(ctx context.Context, cmd UpdateListingCommand) error {
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

	if !aggregate.FarmerID().IsEqual(cmd.ActorID()) {
		return errs.NewNotAuthorizedError("only the owner can edit a listing")
	}

	now := time.Now().UTC()
	aggregate.UpdateDetails(
		cmd.Title(), cmd.Description(), cmd.ProduceType(),
		cmd.Price(), cmd.Quantity(), cmd.Unit(),
		cmd.Location(), cmd.ImageURLs(), now,
	)

	if cmd.Active() != nil {
		if err = aggregate.SetActive(*cmd.Active(), now); err != nil {
			return err
		}
	}

	if err = listingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
