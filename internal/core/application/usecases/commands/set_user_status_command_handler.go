package commands

import (
	"context"
	"time"
)

// SetUserStatusCommandHandler handles admin moderation of accounts.
type SetUserStatusCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserStatusCommandHandler creates a handler for account moderation.
func NewSetUserStatusCommandHandler(uowFactory UserUoWFactory) SetUserStatusCommandHandler {
	return SetUserStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account status command.
func (h *SetUserStatusCommandHandler) Handle(ctx context.Context, cmd SetUserStatusCommand) error {
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

	userRepo := uow.UserRepository()

	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	account.SetActive(cmd.Active(), time.Now().UTC())

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
