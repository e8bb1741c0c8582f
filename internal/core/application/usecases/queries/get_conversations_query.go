package queries

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetConversationsQueryIsNotConstructed = errors.New(
	"GetConversationsQuery must be created via NewGetConversationsQuery constructor",
)

// GetConversationsQuery retrieves an account's message threads, most recently
// active first, with the counterpart's name and the number of unread messages
// joined in.
type GetConversationsQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConversationsQuery creates an inbox query.
func NewGetConversationsQuery(accountID kernel.UUID) (GetConversationsQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetConversationsQuery{}, err
	}

	return GetConversationsQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// AccountID returns the inbox owner's identifier.
func (q GetConversationsQuery) AccountID() kernel.UUID { return q.accountID }

// Validate ensures the query was created through the constructor.
func (q GetConversationsQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationsQueryIsNotConstructed)
}

// ConversationQueryResponse is the inbox read model for one thread.
type ConversationQueryResponse struct {
	ID              string
	CounterpartID   kernel.UUID
	CounterpartName string
	LastMessage     string
	LastMessageAt   time.Time
	UnreadCount     int64
}
