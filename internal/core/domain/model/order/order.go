package order

import (
	"errors"
	"fmt"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// StockEffect describes what a status transition means for the listing's
// remaining stock. The repository applies the effect atomically in the same
// transaction that persists the order.
type StockEffect int

const (
	// StockNone means the transition does not touch the listing.
	StockNone StockEffect = iota

	// StockReserve means the ordered quantity must be subtracted from the
	// listing's remaining stock.
	StockReserve

	// StockRelease means a previously reserved quantity must be returned to
	// the listing's remaining stock.
	StockRelease
)

// Order is a purchase of a listed produce lot by a buyer.
//
// Contact details and the listing title are snapshotted at creation time so
// the order remains readable after the listing or either account changes.
//
// Invariants:
//   - id, listingID, buyerID and farmerID are valid UUIDs
//   - quantity is positive
//   - totalPrice equals unitPrice times quantity at creation time
//   - each status the order has passed through has its timestamp set
type Order struct {
	id           kernel.UUID
	listingID    kernel.UUID
	buyerID      kernel.UUID
	farmerID     kernel.UUID
	listingTitle string
	quantity     kernel.Quantity
	unitPrice    kernel.Money
	totalPrice   kernel.Money
	status       Status

	buyerName       string
	buyerPhone      string
	farmerName      string
	farmerPhone     string
	deliveryAddress string

	acceptedAt  *time.Time
	declinedAt  *time.Time
	shippedAt   *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a pending order. The total price is derived from the unit
// price and the ordered quantity.
func NewOrder(
	id, listingID, buyerID, farmerID kernel.UUID,
	listingTitle string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
	buyerName, buyerPhone, farmerName, farmerPhone, deliveryAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		listingTitle:    listingTitle,
		status:          Pending,
		buyerName:       buyerName,
		buyerPhone:      buyerPhone,
		farmerName:      farmerName,
		farmerPhone:     farmerPhone,
		deliveryAddress: deliveryAddress,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setListingID(listingID),
		o.setBuyerID(buyerID),
		o.setFarmerID(farmerID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.unitPrice = unitPrice
	o.totalPrice = unitPrice.Mul(quantity)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, re-checking all
// invariants.
func RestoreOrder(
	id, listingID, buyerID, farmerID kernel.UUID,
	listingTitle string,
	quantity kernel.Quantity,
	unitPrice, totalPrice kernel.Money,
	status Status,
	buyerName, buyerPhone, farmerName, farmerPhone, deliveryAddress string,
	acceptedAt, declinedAt, shippedAt, completedAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		listingTitle:    listingTitle,
		buyerName:       buyerName,
		buyerPhone:      buyerPhone,
		farmerName:      farmerName,
		farmerPhone:     farmerPhone,
		deliveryAddress: deliveryAddress,
		acceptedAt:      acceptedAt,
		declinedAt:      declinedAt,
		shippedAt:       shippedAt,
		completedAt:     completedAt,
		cancelledAt:     cancelledAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setListingID(listingID),
		o.setBuyerID(buyerID),
		o.setFarmerID(farmerID),
		o.setQuantity(quantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.unitPrice = unitPrice
	o.totalPrice = totalPrice
	return o, nil
}

// Validate ensures the Order was constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ListingID returns the identifier of the ordered listing.
func (o *Order) ListingID() kernel.UUID { return o.listingID }

// BuyerID returns the purchasing account's identifier.
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }

// FarmerID returns the selling account's identifier.
func (o *Order) FarmerID() kernel.UUID { return o.farmerID }

// ListingTitle returns the listing title snapshotted at creation time.
func (o *Order) ListingTitle() string { return o.listingTitle }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() kernel.Quantity { return o.quantity }

// UnitPrice returns the listing's price at creation time.
func (o *Order) UnitPrice() kernel.Money { return o.unitPrice }

// TotalPrice returns the total the buyer owes.
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }

// Status returns the order's lifecycle state.
func (o *Order) Status() Status { return o.status }

// BuyerName returns the buyer's name snapshotted at creation time.
func (o *Order) BuyerName() string { return o.buyerName }

// BuyerPhone returns the buyer's phone snapshotted at creation time.
func (o *Order) BuyerPhone() string { return o.buyerPhone }

// FarmerName returns the farmer's name snapshotted at creation time.
func (o *Order) FarmerName() string { return o.farmerName }

// FarmerPhone returns the farmer's phone snapshotted at creation time.
func (o *Order) FarmerPhone() string { return o.farmerPhone }

// DeliveryAddress returns where the buyer asked for delivery, possibly empty.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// AcceptedAt returns when the order entered Accepted, nil if it never did.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// DeclinedAt returns when the order entered Declined, nil if it never did.
func (o *Order) DeclinedAt() *time.Time { return o.declinedAt }

// ShippedAt returns when the order entered Shipped, nil if it never did.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// CompletedAt returns when the order entered Completed, nil if it never did.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// CancelledAt returns when the order entered Cancelled, nil if it never did.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// ChangeStatus moves the order to the requested status on behalf of actorID.
//
// Authorization is keyed on the requested status: Accepted, Declined and
// Shipped require the caller to be the order's farmer, Completed requires the
// buyer, Pending and Cancelled accept either side. The current status does
// not restrict which statuses may be requested.
//
// The returned StockEffect tells the caller how the listing's remaining
// stock must change: entering Accepted reserves the ordered quantity, and
// declining or cancelling an accepted order releases it again.
func (o *Order) ChangeStatus(requested Status, actorID kernel.UUID, now time.Time) (StockEffect, error) {
	if err := requested.Validate(); err != nil {
		return StockNone, err
	}
	if err := o.authorizeTransition(requested, actorID); err != nil {
		return StockNone, err
	}

	previous := o.status
	o.status = requested
	o.stampStatus(requested, now)
	o.updatedAt = now

	switch {
	case requested == Accepted && previous != Accepted:
		return StockReserve, nil
	case (requested == Declined || requested == Cancelled) && previous == Accepted:
		return StockRelease, nil
	default:
		return StockNone, nil
	}
}

// CancelByBuyer withdraws a not-yet-accepted order. Only the buyer may do
// this, and only while the order is still Pending; once the farmer has
// reacted the buyer must go through a regular status change.
func (o *Order) CancelByBuyer(actorID kernel.UUID, now time.Time) error {
	if !actorID.IsEqual(o.buyerID) {
		return errs.NewNotAuthorizedError("only the buyer can withdraw an order")
	}
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order can no longer be withdrawn", o.status),
		)
	}

	o.status = Cancelled
	o.stampStatus(Cancelled, now)
	o.updatedAt = now
	return nil
}

// IsParticipant reports whether the given account is the buyer or the farmer
// of this order.
func (o *Order) IsParticipant(accountID kernel.UUID) bool {
	return accountID.IsEqual(o.buyerID) || accountID.IsEqual(o.farmerID)
}

func (o *Order) authorizeTransition(requested Status, actorID kernel.UUID) error {
	switch getTransitionParties()[requested] {
	case farmerParty:
		if !actorID.IsEqual(o.farmerID) {
			return errs.NewNotAuthorizedError(
				fmt.Sprintf("only the farmer can mark an order %s", requested),
			)
		}
	case buyerParty:
		if !actorID.IsEqual(o.buyerID) {
			return errs.NewNotAuthorizedError(
				fmt.Sprintf("only the buyer can mark an order %s", requested),
			)
		}
	case anyParty:
	}
	return nil
}

func (o *Order) stampStatus(status Status, now time.Time) {
	//nolint:exhaustive // Pending and Unknown carry no timestamp
	switch status {
	case Accepted:
		o.acceptedAt = &now
	case Declined:
		o.declinedAt = &now
	case Shipped:
		o.shippedAt = &now
	case Completed:
		o.completedAt = &now
	case Cancelled:
		o.cancelledAt = &now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setListingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.listingID = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.buyerID = id
	return nil
}

func (o *Order) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.farmerID = id
	return nil
}

func (o *Order) setQuantity(quantity kernel.Quantity) error {
	if quantity.IsZero() {
		return errs.NewValueIsRequiredError("quantity")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
