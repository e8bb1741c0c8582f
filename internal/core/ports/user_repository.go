package ports

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for account aggregates.
type UserRepository interface {
	// Add persists a new account. The email must not already be taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its email address.
	// Used by login, where no ID is known yet.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Delete removes an account permanently.
	Delete(ctx context.Context, id kernel.UUID) error
}
