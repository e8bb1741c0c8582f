package commands

import (
	"context"
	"time"
)

// SetUserRoleCommandHandler handles admin role reassignment.
type SetUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserRoleCommandHandler creates a handler for role changes.
func NewSetUserRoleCommandHandler(uowFactory UserUoWFactory) SetUserRoleCommandHandler {
	return SetUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change command.
func (h *SetUserRoleCommandHandler) Handle(ctx context.Context, cmd SetUserRoleCommand) error {
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

	if err = account.ChangeRole(cmd.Role(), time.Now().UTC()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
