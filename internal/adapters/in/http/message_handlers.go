package http

import (
	"net/http"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/message"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetConversations handles GET /api/messages/conversations.
func (s *Server) GetConversations(ctx echo.Context) error {
	accountID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	query, err := queries.NewGetConversationsQuery(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetConversations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]conversationResponse, len(result))
	for i, item := range result {
		responses[i] = conversationResponse{
			ID:              item.ID,
			CounterpartID:   item.CounterpartID.String(),
			CounterpartName: item.CounterpartName,
			LastMessage:     item.LastMessage,
			LastMessageAt:   item.LastMessageAt,
			UnreadCount:     item.UnreadCount,
		}
	}

	return ctx.JSON(http.StatusOK, responses)
}

// GetConversationMessages handles GET /api/messages/conversation/:id. The
// path parameter is the counterpart's user id, not the conversation key.
// Reading a conversation marks its incoming messages read.
func (s *Server) GetConversationMessages(ctx echo.Context) error {
	accountID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	counterpartID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetConversationMessagesQuery(accountID, counterpartID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetConversationMessages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	conversationID := message.ConversationID(accountID, counterpartID)
	if cmd, cmdErr := commands.NewMarkConversationReadCommand(conversationID, accountID); cmdErr == nil {
		_ = s.commands.MarkConversationRead.Handle(ctx.Request().Context(), cmd)
	}

	responses := make([]messageResponse, len(result))
	for i, item := range result {
		responses[i] = messageResponse{
			ID:         item.ID.String(),
			SenderID:   item.SenderID.String(),
			ReceiverID: item.ReceiverID.String(),
			Text:       item.Text,
			Read:       item.Read,
			CreatedAt:  item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, responses)
}

// GetUnreadCount handles GET /api/messages/unread/count.
func (s *Server) GetUnreadCount(ctx echo.Context) error {
	accountID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	query, err := queries.NewGetUnreadCountQuery(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	count, err := s.queries.GetUnreadCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"unread": count})
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
}

// SendMessage handles POST /api/messages.
func (s *Server) SendMessage(ctx echo.Context) error {
	senderID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	var req sendMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return respondError(ctx, err)
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewSendMessageCommand(messageID, senderID, receiverID, req.Text)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SendMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": messageID.String()})
}

// DeleteMessage handles DELETE /api/messages/:id. Only the sender may
// delete a message.
func (s *Server) DeleteMessage(ctx echo.Context) error {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	messageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteMessageCommand(messageID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
