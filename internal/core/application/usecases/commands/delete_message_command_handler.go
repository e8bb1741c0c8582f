package commands

import (
	"context"

	"agromarket/internal/pkg/errs"
)

// DeleteMessageCommandHandler handles removal of sent messages.
type DeleteMessageCommandHandler struct {
	uowFactory MessageUoWFactory
}

// NewDeleteMessageCommandHandler creates a handler for message removal.
func NewDeleteMessageCommandHandler(uowFactory MessageUoWFactory) DeleteMessageCommandHandler {
	return DeleteMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the message removal command. Only the sender may remove
// a message.
func (h *DeleteMessageCommandHandler) Handle(ctx context.Context, cmd DeleteMessageCommand) error {
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

	messageRepo := uow.MessageRepository()

	msg, err := messageRepo.Get(ctx, cmd.MessageID())
	if err != nil {
		return err
	}

	if !msg.SenderID().IsEqual(cmd.ActorID()) {
		return errs.NewNotAuthorizedError("only the sender can remove a message")
	}

	if err = messageRepo.Delete(ctx, cmd.MessageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
