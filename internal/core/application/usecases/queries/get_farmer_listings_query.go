package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetFarmerListingsQueryIsNotConstructed = errors.New(
	"GetFarmerListingsQuery must be created via NewGetFarmerListingsQuery constructor",
)

// GetFarmerListingsQuery retrieves every listing a farmer owns, including
// inactive and suspended ones. Farmers use it to manage their own inventory.
type GetFarmerListingsQuery struct {
	farmerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFarmerListingsQuery creates an inventory query for one farmer.
func NewGetFarmerListingsQuery(farmerID kernel.UUID) (GetFarmerListingsQuery, error) {
	if err := farmerID.Validate(); err != nil {
		return GetFarmerListingsQuery{}, err
	}

	return GetFarmerListingsQuery{
		farmerID: farmerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// FarmerID returns the owning farmer's identifier.
func (q GetFarmerListingsQuery) FarmerID() kernel.UUID { return q.farmerID }

// Validate ensures the query was created through the constructor.
func (q GetFarmerListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetFarmerListingsQueryIsNotConstructed)
}
