package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves the orders a buyer has placed, optionally
// narrowed to one lifecycle status.
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a purchase history query. A nil status
// matches every order.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID, status *order.Status) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetBuyerOrdersQuery{}, err
		}
	}

	return GetBuyerOrdersQuery{
		buyerID: buyerID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// BuyerID returns the purchasing account's identifier.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID { return q.buyerID }

// Status returns the status filter, nil for all.
func (q GetBuyerOrdersQuery) Status() *order.Status { return q.status }

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}
