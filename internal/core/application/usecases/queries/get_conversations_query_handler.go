package queries

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConversationsQueryHandler reads an account's inbox from the database.
type GetConversationsQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationsQueryHandler creates a handler for inbox queries.
func NewGetConversationsQueryHandler(db *gorm.DB) GetConversationsQueryHandler {
	return GetConversationsQueryHandler{db: db}
}

// Handle executes the inbox query. For each thread the counterpart is
// whichever participant is not the inbox owner, and the unread count covers
// messages addressed to the owner that have not been read yet.
func (h GetConversationsQueryHandler) Handle(
	ctx context.Context,
	query GetConversationsQuery,
) ([]ConversationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	self := query.AccountID().Bytes()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			CASE WHEN c.participant_a = @self THEN c.participant_b ELSE c.participant_a END AS counterpart_id,
			u.name,
			c.last_message,
			c.last_message_at,
			(
				SELECT COUNT(*) FROM messages m
				WHERE m.conversation_id = c.id AND m.receiver_id = @self AND m.read = false
			) AS unread_count
		FROM conversations c
		JOIN users u ON u.id = CASE WHEN c.participant_a = @self THEN c.participant_b ELSE c.participant_a END
		WHERE c.participant_a = @self OR c.participant_b = @self
		ORDER BY c.last_message_at DESC
	`, map[string]any{"self": self}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := make([]ConversationQueryResponse, 0)
	for rows.Next() {
		var item ConversationQueryResponse
		var counterpartID uuid.UUID

		err = rows.Scan(
			&item.ID,
			&counterpartID,
			&item.CounterpartName,
			&item.LastMessage,
			&item.LastMessageAt,
			&item.UnreadCount,
		)
		if err != nil {
			return nil, err
		}

		item.CounterpartID, err = kernel.UUIDFromBytes(counterpartID[:])
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}
