package commands

import (
	"context"

	"agromarket/internal/pkg/errs"
)

// DeleteListingCommandHandler handles listing removal.
type DeleteListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewDeleteListingCommandHandler creates a handler for listing removal.
func NewDeleteListingCommandHandler(uowFactory ListingUoWFactory) DeleteListingCommandHandler {
	return DeleteListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing removal command.
func (h *DeleteListingCommandHandler) Handle(ctx context.Context, cmd DeleteListingCommand) error {
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

	if !cmd.IsAdmin() && !aggregate.FarmerID().IsEqual(cmd.ActorID()) {
		return errs.NewNotAuthorizedError("only the owner can remove a listing")
	}

	if err = listingRepo.Delete(ctx, cmd.ListingID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
