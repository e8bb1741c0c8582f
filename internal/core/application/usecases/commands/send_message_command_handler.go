package commands

import (
	"context"
	"errors"
	"time"

	"agromarket/internal/core/domain/model/message"
	"agromarket/internal/pkg/errs"
)

// SendMessageCommandHandler handles direct message delivery. The message row
// and the conversation preview are written in the same transaction.
type SendMessageCommandHandler struct {
	uowFactory MessageUoWFactory
}

// NewSendMessageCommandHandler creates a handler for message sending.
func NewSendMessageCommandHandler(uowFactory MessageUoWFactory) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the message command. The conversation is created on first
// contact between a pair of accounts.
func (h *SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) error {
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

	now := time.Now().UTC()
	msg, err := message.NewMessage(cmd.MessageID(), cmd.SenderID(), cmd.ReceiverID(), cmd.Text(), now)
	if err != nil {
		return err
	}

	if err = messageRepo.Add(ctx, msg); err != nil {
		return err
	}

	conversation, err := messageRepo.GetConversation(ctx, msg.ConversationID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if conversation, err = message.NewConversation(cmd.SenderID(), cmd.ReceiverID(), now); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	conversation.RecordMessage(msg.Text(), now)

	if err = messageRepo.UpsertConversation(ctx, conversation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
