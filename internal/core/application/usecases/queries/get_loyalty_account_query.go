package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/loyalty"
	"agromarket/internal/pkg/guard"
)

var ErrGetLoyaltyAccountQueryIsNotConstructed = errors.New(
	"GetLoyaltyAccountQuery must be created via NewGetLoyaltyAccountQuery constructor",
)

// GetLoyaltyAccountQuery retrieves an account's points balance and tier.
// Accounts that never earned a point read as a fresh bronze account, since
// points accounts are created lazily on the first completed order.
type GetLoyaltyAccountQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoyaltyAccountQuery creates a points balance query.
func NewGetLoyaltyAccountQuery(userID kernel.UUID) (GetLoyaltyAccountQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetLoyaltyAccountQuery{}, err
	}

	return GetLoyaltyAccountQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the account's identifier.
func (q GetLoyaltyAccountQuery) UserID() kernel.UUID { return q.userID }

// Validate ensures the query was created through the constructor.
func (q GetLoyaltyAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyAccountQueryIsNotConstructed)
}

// GetLoyaltyAccountQueryResponse is the points balance read model.
type GetLoyaltyAccountQueryResponse struct {
	UserID      kernel.UUID
	Points      int64
	TotalEarned int64
	Tier        loyalty.Tier
}
