package commands

import (
	"context"
	"time"

	"agromarket/internal/core/domain/model/listing"
)

// CreateListingCommandHandler handles publication of new produce listings.
type CreateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewCreateListingCommandHandler creates a handler for listing publication.
func NewCreateListingCommandHandler(uowFactory ListingUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing creation command.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
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

	aggregate, err := listing.NewListing(
		cmd.ListingID(),
		cmd.FarmerID(),
		cmd.Title(),
		cmd.Description(),
		cmd.ProduceType(),
		cmd.Price(),
		cmd.Quantity(),
		cmd.Unit(),
		cmd.Location(),
		cmd.ImageURLs(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = listingRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
