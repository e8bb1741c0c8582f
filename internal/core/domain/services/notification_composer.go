package services

import (
	"fmt"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/notification"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/pkg/errs"
)

// NotificationComposer is a domain service that turns order events into
// outbox rows addressed to the side of the order that did not act.
//
// Business rules:
//   - A newly placed order notifies the farmer
//   - Accepted, declined and shipped notify the buyer
//   - Completed and a buyer withdrawal notify the farmer
//   - Cancelled through a status change notifies the counterpart of the actor
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// OrderPlaced composes the email that tells the farmer a new order arrived.
func (c NotificationComposer) OrderPlaced(
	o *order.Order,
	farmerEmail string,
	now time.Time,
) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("New order for %s", o.ListingTitle())
	body := fmt.Sprintf(
		"%s placed an order for %s x %s (total %s NGN).\n\nContact: %s",
		o.BuyerName(), o.Quantity(), o.ListingTitle(), o.TotalPrice(), o.BuyerPhone(),
	)

	return notification.NewNotification(kernel.NewUUID(), farmerEmail, o.FarmerName(), subject, body, now)
}

// OrderStatusChanged composes the email that tells the non-acting side of an
// order about a status change. actorID determines the recipient.
func (c NotificationComposer) OrderStatusChanged(
	o *order.Order,
	actorID kernel.UUID,
	buyerEmail, farmerEmail string,
	now time.Time,
) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var recipientEmail, recipientName string
	switch {
	case actorID.IsEqual(o.FarmerID()):
		recipientEmail, recipientName = buyerEmail, o.BuyerName()
	case actorID.IsEqual(o.BuyerID()):
		recipientEmail, recipientName = farmerEmail, o.FarmerName()
	default:
		return nil, errs.NewValueIsInvalidError("actor is not a participant of the order")
	}

	subject := fmt.Sprintf("Order for %s is now %s", o.ListingTitle(), o.Status())
	body := fmt.Sprintf(
		"The order for %s x %s has been marked %s.",
		o.Quantity(), o.ListingTitle(), o.Status(),
	)

	return notification.NewNotification(kernel.NewUUID(), recipientEmail, recipientName, subject, body, now)
}

// OrderWithdrawn composes the email that tells the farmer the buyer withdrew
// a pending order.
func (c NotificationComposer) OrderWithdrawn(
	o *order.Order,
	farmerEmail string,
	now time.Time,
) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Order for %s was withdrawn", o.ListingTitle())
	body := fmt.Sprintf(
		"%s withdrew their order for %s x %s before it was accepted.",
		o.BuyerName(), o.Quantity(), o.ListingTitle(),
	)

	return notification.NewNotification(kernel.NewUUID(), farmerEmail, o.FarmerName(), subject, body, now)
}
