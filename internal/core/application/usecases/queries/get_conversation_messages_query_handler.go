package queries

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/message"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConversationMessagesQueryHandler reads one thread's history from the
// database.
type GetConversationMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationMessagesQueryHandler creates a handler for thread history
// queries.
func NewGetConversationMessagesQueryHandler(db *gorm.DB) GetConversationMessagesQueryHandler {
	return GetConversationMessagesQueryHandler{db: db}
}

// Handle executes the thread history query. The thread identifier is derived
// from the two participants, so the requester can only ever read threads they
// are part of.
func (h GetConversationMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetConversationMessagesQuery,
) ([]MessageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conversationID := message.ConversationID(query.AccountID(), query.CounterpartID())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			receiver_id,
			text,
			read,
			created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at
	`, conversationID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]MessageQueryResponse, 0)
	for rows.Next() {
		var item MessageQueryResponse
		var id, senderID, receiverID uuid.UUID

		err = rows.Scan(&id, &senderID, &receiverID, &item.Text, &item.Read, &item.CreatedAt)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		if item.ReceiverID, err = kernel.UUIDFromBytes(receiverID[:]); err != nil {
			return nil, err
		}
		messages = append(messages, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
