package commands

import (
	"context"
	"time"
)

// VerifyUserCommandHandler handles admin verification of seller accounts.
type VerifyUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewVerifyUserCommandHandler creates a handler for account verification.
func NewVerifyUserCommandHandler(uowFactory UserUoWFactory) VerifyUserCommandHandler {
	return VerifyUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
func (h *VerifyUserCommandHandler) Handle(ctx context.Context, cmd VerifyUserCommand) error {
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

	account.Verify(time.Now().UTC())

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
