package ports

import (
	"context"
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
)

// ErrInsufficientStock is returned by Reserve when the listing's remaining
// quantity is smaller than the requested reservation. The check and the
// decrement happen in a single conditional update, so two concurrent
// reservations can never both succeed on the last units.
var ErrInsufficientStock = errors.New("insufficient stock")

// ListingRepository defines the persistence contract for listing aggregates,
// including the atomic stock operations the order workflow relies on.
type ListingRepository interface {
	// Add persists a new listing.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing. Stock is not written
	// through Update; use Reserve and Release instead.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// Delete removes a listing permanently.
	Delete(ctx context.Context, id kernel.UUID) error

	// Reserve atomically subtracts quantity from the listing's remaining
	// stock. Returns ErrInsufficientStock when not enough stock remains.
	Reserve(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error

	// Release atomically returns a previously reserved quantity to the
	// listing's remaining stock.
	Release(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error

	// IncrementViews bumps the listing's view counter by one.
	IncrementViews(ctx context.Context, id kernel.UUID) error
}
