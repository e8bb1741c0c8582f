package commands

import (
	"context"
	"time"
)

// UpdateProfileCommandHandler handles self-service profile edits.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	account.UpdateProfile(cmd.Name(), cmd.Phone(), cmd.Location(), cmd.Bio(), time.Now().UTC())

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
