package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetListingQueryIsNotConstructed = errors.New(
	"GetListingQuery must be created via NewGetListingQuery constructor",
)

// GetListingQuery retrieves a single listing regardless of its status. The
// caller decides whether a hidden listing may be shown, e.g. to its owner or
// an admin.
type GetListingQuery struct {
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetListingQuery creates a listing detail query.
func NewGetListingQuery(listingID kernel.UUID) (GetListingQuery, error) {
	if err := listingID.Validate(); err != nil {
		return GetListingQuery{}, err
	}

	return GetListingQuery{
		listingID: listingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ListingID returns the identifier of the requested listing.
func (q GetListingQuery) ListingID() kernel.UUID { return q.listingID }

// Validate ensures the query was created through the constructor.
func (q GetListingQuery) Validate() error {
	return q.guard.Validate(ErrGetListingQueryIsNotConstructed)
}
