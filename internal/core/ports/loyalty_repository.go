package ports

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/loyalty"
)

// LoyaltyRepository defines the persistence contract for points accounts.
// Accounts are keyed by user ID and created lazily on first reward.
type LoyaltyRepository interface {
	// Get retrieves the points account of a user.
	Get(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error)

	// Upsert persists the account, creating it when none exists yet.
	Upsert(ctx context.Context, aggregate *loyalty.Account) error
}
