package commands

import (
	"context"
	"time"
)

// SpendPointsCommandHandler handles loyalty point redemption.
type SpendPointsCommandHandler struct {
	uowFactory LoyaltyUoWFactory
}

// NewSpendPointsCommandHandler creates a handler for point redemption.
func NewSpendPointsCommandHandler(uowFactory LoyaltyUoWFactory) SpendPointsCommandHandler {
	return SpendPointsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the redemption command. Fails when the spendable balance
// is smaller than the requested amount.
func (h *SpendPointsCommandHandler) Handle(ctx context.Context, cmd SpendPointsCommand) error {
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

	loyaltyRepo := uow.LoyaltyRepository()

	account, err := loyaltyRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = account.Spend(cmd.Points(), time.Now().UTC()); err != nil {
		return err
	}

	if err = loyaltyRepo.Upsert(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
