package queries

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order on behalf of a participant or an admin.
// Accounts that are neither the buyer nor the farmer of the order get a
// not-found answer rather than a hint that the order exists; admins read any
// order.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID
	asAdmin     bool

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID, requesterID kernel.UUID, asAdmin bool) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		asAdmin:     asAdmin,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// RequesterID returns the account asking for the order.
func (q GetOrderQuery) RequesterID() kernel.UUID { return q.requesterID }

// AsAdmin reports whether the requester reads with admin privileges.
func (q GetOrderQuery) AsAdmin() bool { return q.asAdmin }

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
