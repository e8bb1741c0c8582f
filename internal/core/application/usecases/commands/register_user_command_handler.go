package commands

import (
	"context"
	"errors"
	"time"

	"agromarket/internal/auth"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the requested email is taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler handles account creation. The password is
// hashed here so plaintext never reaches the persistence layer.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Fails when the email is already
// taken by another account.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password is invalid", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	account, err := user.NewUser(
		cmd.UserID(),
		cmd.Email(),
		cmd.Name(),
		cmd.Phone(),
		passwordHash,
		cmd.Role(),
		cmd.Location(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
