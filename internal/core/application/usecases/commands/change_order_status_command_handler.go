package commands

import (
	"context"
	"errors"
	"time"

	"agromarket/internal/core/domain/model/loyalty"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/core/domain/services"
	"agromarket/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
//
// A single transaction covers the order row, the listing's stock, the
// buyer's loyalty account, and the outbox row for the counterpart's email.
// Acceptance reserves stock through a conditional update, so two farmers'
// concurrent accepts against the same remaining units cannot both commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.NotificationComposer
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the status change command.
//
// Stock effects derived from the transition:
//   - entering Accepted reserves the ordered quantity
//   - leaving Accepted for Declined or Cancelled releases it
//
// Completion additionally credits the buyer's loyalty account.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	effect, err := aggregate.ChangeStatus(cmd.Status(), cmd.ActorID(), now)
	if err != nil {
		return err
	}

	listingRepo := uow.ListingRepository()
	switch effect {
	case order.StockReserve:
		if err = listingRepo.Reserve(ctx, aggregate.ListingID(), aggregate.Quantity()); err != nil {
			return err
		}
	case order.StockRelease:
		if err = listingRepo.Release(ctx, aggregate.ListingID(), aggregate.Quantity()); err != nil {
			return err
		}
	case order.StockNone:
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == order.Completed {
		if err = h.rewardBuyer(ctx, uow, aggregate, now); err != nil {
			return err
		}
	}

	if err = h.enqueueNotification(ctx, uow, aggregate, cmd, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// rewardBuyer credits the completion reward. The first reward an account
// ever receives carries the first-order bonus on top.
func (h *ChangeOrderStatusCommandHandler) rewardBuyer(
	ctx context.Context,
	uow OrderUoW,
	aggregate *order.Order,
	now time.Time,
) error {
	loyaltyRepo := uow.LoyaltyRepository()

	account, err := loyaltyRepo.Get(ctx, aggregate.BuyerID())
	firstReward := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if account, err = loyalty.NewAccount(aggregate.BuyerID(), now); err != nil {
			return err
		}
		firstReward = true
	case err != nil:
		return err
	default:
		firstReward = account.TotalEarned() == 0
	}

	points := loyalty.PointsForOrder(aggregate.TotalPrice())
	if firstReward {
		points += loyalty.PointsFirstOrder
	}

	if err = account.Earn(points, now); err != nil {
		return err
	}

	return loyaltyRepo.Upsert(ctx, account)
}

// enqueueNotification writes the outbox row for the side of the order that
// did not act. A deleted counterpart account simply means no email.
func (h *ChangeOrderStatusCommandHandler) enqueueNotification(
	ctx context.Context,
	uow OrderUoW,
	aggregate *order.Order,
	cmd ChangeOrderStatusCommand,
	now time.Time,
) error {
	userRepo := uow.UserRepository()

	buyer, err := userRepo.Get(ctx, aggregate.BuyerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	farmer, err := userRepo.Get(ctx, aggregate.FarmerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	mail, err := h.composer.OrderStatusChanged(aggregate, cmd.ActorID(), buyer.Email(), farmer.Email(), now)
	if err != nil {
		return err
	}

	return uow.NotificationRepository().Add(ctx, mail)
}
