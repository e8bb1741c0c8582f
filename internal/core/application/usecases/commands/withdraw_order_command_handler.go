package commands

import (
	"context"
	"errors"
	"time"

	"agromarket/internal/core/domain/services"
	"agromarket/internal/pkg/errs"
)

// WithdrawOrderCommandHandler handles buyer withdrawal of pending orders.
// The order is kept as a cancelled row rather than removed, so trade history
// stays complete.
type WithdrawOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   services.NotificationComposer
}

// NewWithdrawOrderCommandHandler creates a handler for order withdrawal.
func NewWithdrawOrderCommandHandler(uowFactory OrderUoWFactory) WithdrawOrderCommandHandler {
	return WithdrawOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the withdrawal command.
func (h *WithdrawOrderCommandHandler) Handle(ctx context.Context, cmd WithdrawOrderCommand) error {
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
	if err = aggregate.CancelByBuyer(cmd.ActorID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	farmer, err := uow.UserRepository().Get(ctx, aggregate.FarmerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return err
	default:
		mail, composeErr := h.composer.OrderWithdrawn(aggregate, farmer.Email(), now)
		if composeErr != nil {
			return composeErr
		}
		if err = uow.NotificationRepository().Add(ctx, mail); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
