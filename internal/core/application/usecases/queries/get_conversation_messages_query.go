package queries

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetConversationMessagesQueryIsNotConstructed = errors.New(
	"GetConversationMessagesQuery must be created via NewGetConversationMessagesQuery constructor",
)

// GetConversationMessagesQuery retrieves the full message history between the
// requesting account and one counterpart, oldest first.
type GetConversationMessagesQuery struct {
	accountID     kernel.UUID
	counterpartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConversationMessagesQuery creates a thread history query.
func NewGetConversationMessagesQuery(accountID, counterpartID kernel.UUID) (GetConversationMessagesQuery, error) {
	if err := errors.Join(accountID.Validate(), counterpartID.Validate()); err != nil {
		return GetConversationMessagesQuery{}, err
	}

	return GetConversationMessagesQuery{
		accountID:     accountID,
		counterpartID: counterpartID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// AccountID returns the requesting account's identifier.
func (q GetConversationMessagesQuery) AccountID() kernel.UUID { return q.accountID }

// CounterpartID returns the other side of the thread.
func (q GetConversationMessagesQuery) CounterpartID() kernel.UUID { return q.counterpartID }

// Validate ensures the query was created through the constructor.
func (q GetConversationMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationMessagesQueryIsNotConstructed)
}

// MessageQueryResponse is the read model for one direct message.
type MessageQueryResponse struct {
	ID         kernel.UUID
	SenderID   kernel.UUID
	ReceiverID kernel.UUID
	Text       string
	Read       bool
	CreatedAt  time.Time
}
