package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetUnreadCountQueryIsNotConstructed = errors.New(
	"GetUnreadCountQuery must be created via NewGetUnreadCountQuery constructor",
)

// GetUnreadCountQuery retrieves the total number of unread messages addressed
// to an account, for inbox badges.
type GetUnreadCountQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnreadCountQuery creates an unread badge query.
func NewGetUnreadCountQuery(accountID kernel.UUID) (GetUnreadCountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetUnreadCountQuery{}, err
	}

	return GetUnreadCountQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// AccountID returns the inbox owner's identifier.
func (q GetUnreadCountQuery) AccountID() kernel.UUID { return q.accountID }

// Validate ensures the query was created through the constructor.
func (q GetUnreadCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadCountQueryIsNotConstructed)
}
