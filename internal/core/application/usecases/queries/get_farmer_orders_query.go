package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/pkg/guard"
)

var ErrGetFarmerOrdersQueryIsNotConstructed = errors.New(
	"GetFarmerOrdersQuery must be created via NewGetFarmerOrdersQuery constructor",
)

// GetFarmerOrdersQuery retrieves the orders placed against a farmer's
// listings, optionally narrowed to one lifecycle status.
type GetFarmerOrdersQuery struct {
	farmerID kernel.UUID
	status   *order.Status

	guard guard.ConstructorGuard
}

// NewGetFarmerOrdersQuery creates a sales query. A nil status matches every
// order.
func NewGetFarmerOrdersQuery(farmerID kernel.UUID, status *order.Status) (GetFarmerOrdersQuery, error) {
	if err := farmerID.Validate(); err != nil {
		return GetFarmerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetFarmerOrdersQuery{}, err
		}
	}

	return GetFarmerOrdersQuery{
		farmerID: farmerID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// FarmerID returns the selling account's identifier.
func (q GetFarmerOrdersQuery) FarmerID() kernel.UUID { return q.farmerID }

// Status returns the status filter, nil for all.
func (q GetFarmerOrdersQuery) Status() *order.Status { return q.status }

// Validate ensures the query was created through the constructor.
func (q GetFarmerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetFarmerOrdersQueryIsNotConstructed)
}
