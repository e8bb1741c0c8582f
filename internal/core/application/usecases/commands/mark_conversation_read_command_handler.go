package commands

import (
	"context"

	"agromarket/internal/pkg/errs"
)

// MarkConversationReadCommandHandler flags received messages as read.
type MarkConversationReadCommandHandler struct {
	uowFactory MessageUoWFactory
}

// NewMarkConversationReadCommandHandler creates a handler for read marking.
func NewMarkConversationReadCommandHandler(uowFactory MessageUoWFactory) MarkConversationReadCommandHandler {
	return MarkConversationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read-marking command. Only a participant of the
// conversation may mark it read.
func (h *MarkConversationReadCommandHandler) Handle(ctx context.Context, cmd MarkConversationReadCommand) error {
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

	conversation, err := messageRepo.GetConversation(ctx, cmd.ConversationID())
	if err != nil {
		return err
	}

	if !conversation.HasParticipant(cmd.ReaderID()) {
		return errs.NewNotAuthorizedError("not a participant of this conversation")
	}

	if err = messageRepo.MarkConversationRead(ctx, cmd.ConversationID(), cmd.ReaderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
