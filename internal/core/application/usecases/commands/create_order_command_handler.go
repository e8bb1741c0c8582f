package commands

import (
	"context"
	"errors"
	"time"

	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/core/domain/services"
	"agromarket/internal/pkg/errs"
)

var (
	// ErrListingNotOrderable is returned when the listing is hidden,
	// suspended, or sold out.
	ErrListingNotOrderable = errors.New("listing is not orderable")

	// ErrCannotOrderOwnListing is returned when a farmer tries to order
	// their own produce.
	ErrCannotOrderOwnListing = errors.New("cannot order your own listing")
)

// CreateOrderCommandHandler handles the business logic for placing orders.
//
// The quantity check against the listing here is advisory: it gives the
// buyer a friendly error while stock still looks sufficient at read time.
// The authoritative check is the conditional stock reservation that runs
// when the farmer accepts the order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.NotificationComposer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the order placement command. The order row and the
// farmer's notification are written in the same transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	userRepo := uow.UserRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := listingRepo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if !aggregate.IsOrderable() {
		return ErrListingNotOrderable
	}
	if aggregate.FarmerID().IsEqual(cmd.BuyerID()) {
		return ErrCannotOrderOwnListing
	}
	if aggregate.Quantity().Less(cmd.Quantity()) {
		return errs.NewValueIsOutOfRangeError(
			"quantity", cmd.Quantity().Value(), 0, aggregate.Quantity().Value(),
		)
	}

	buyer, err := userRepo.Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	farmer, err := userRepo.Get(ctx, aggregate.FarmerID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		aggregate.ID(),
		buyer.ID(),
		farmer.ID(),
		aggregate.Title(),
		cmd.Quantity(),
		aggregate.Price(),
		buyer.Name(), buyer.Phone(),
		farmer.Name(), farmer.Phone(),
		cmd.DeliveryAddress(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	mail, err := h.composer.OrderPlaced(newOrder, farmer.Email(), now)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, mail); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
