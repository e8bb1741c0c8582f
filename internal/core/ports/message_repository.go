package ports

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/message"
)

// MessageRepository defines the persistence contract for direct messages and
// their conversation threads.
type MessageRepository interface {
	// Add persists a new message.
	Add(ctx context.Context, aggregate *message.Message) error

	// Get retrieves a message by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*message.Message, error)

	// Delete removes a message permanently.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetConversation retrieves a conversation thread by its derived ID.
	GetConversation(ctx context.Context, id string) (*message.Conversation, error)

	// UpsertConversation creates the conversation on first contact and
	// refreshes its latest message preview afterwards.
	UpsertConversation(ctx context.Context, aggregate *message.Conversation) error

	// MarkConversationRead flags every message addressed to readerID in the
	// conversation as read.
	MarkConversationRead(ctx context.Context, conversationID string, readerID kernel.UUID) error
}
