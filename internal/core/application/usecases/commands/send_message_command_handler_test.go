package commands_test

import (
	"errors"
	"testing"
	"time"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/message"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendMessageCommandHandler_Handle_FirstContact(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	conversationID := message.ConversationID(senderID, receiverID)
	cmd, _ := commands.NewSendMessageCommand(kernel.NewUUID(), senderID, receiverID, "Is the maize still available?")

	repo := new(MockMessageRepository)
	uow := new(MockMessageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MessageRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*message.Message")).Return(nil).Once(),
		repo.On("GetConversation", ctx, conversationID).
			Return(nil, errs.NewObjectNotFoundError("conversation", conversationID)).Once(),
		repo.On("UpsertConversation", ctx, mock.MatchedBy(func(c *message.Conversation) bool {
			return c.ID() == conversationID && c.LastMessage() == "Is the maize still available?"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendMessageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSendMessageCommandHandler_Handle_ExistingConversation(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	conversationID := message.ConversationID(senderID, receiverID)
	cmd, _ := commands.NewSendMessageCommand(kernel.NewUUID(), senderID, receiverID, "Yes, 40 bags left")

	conversation, err := message.NewConversation(senderID, receiverID, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	repo := new(MockMessageRepository)
	uow := new(MockMessageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MessageRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*message.Message")).Return(nil).Once(),
		repo.On("GetConversation", ctx, conversationID).Return(conversation, nil).Once(),
		repo.On("UpsertConversation", ctx, conversation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendMessageCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Yes, 40 bags left", conversation.LastMessage())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendMessageCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendMessageCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "hello")

	repo := new(MockMessageRepository)
	uow := new(MockMessageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MessageRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*message.Message")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMessageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendMessageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendMessageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SendMessageCommand{} // not constructed properly
	factory := new(MockMessageUoWFactory)
	h := commands.NewSendMessageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
