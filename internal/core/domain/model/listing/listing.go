package listing

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

// ErrListingIsNotConstructed is returned when a Listing instance was not
// created through NewListing or RestoreListing.
var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing or RestoreListing")

// Listing is a produce offer published by a farmer.
//
// The advertised quantity is the remaining stock. It is decremented when an
// order against the listing is accepted and restored when such an order is
// later declined or cancelled. Stock mutations are performed atomically by
// the repository, so the aggregate itself only carries the last known value.
//
// Invariants:
//   - id and farmerID are valid UUIDs
//   - title and produceType are non-empty
//   - price is non-negative, quantity is non-negative
//   - suspension fields are set iff status is Suspended
type Listing struct {
	id           kernel.UUID
	farmerID     kernel.UUID
	title        string
	description  string
	produceType  string
	price        kernel.Money
	quantity     kernel.Quantity
	unit         string
	location     kernel.Location
	imageURLs    []string
	status       Status
	views        int64
	suspendedBy  *kernel.UUID
	suspendedAt  *time.Time
	suspendedFor string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewListing creates an active listing with zero views.
func NewListing(
	id, farmerID kernel.UUID,
	title, description, produceType string,
	price kernel.Money,
	quantity kernel.Quantity,
	unit string,
	location kernel.Location,
	imageURLs []string,
	now time.Time,
) (*Listing, error) {
	l := &Listing{
		description:   description,
		location:      location,
		imageURLs:     imageURLs,
		status:        Active,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setFarmerID(farmerID),
		l.setTitle(title),
		l.setProduceType(produceType),
		l.setUnit(unit),
	); err != nil {
		return nil, err
	}

	l.price = price
	l.quantity = quantity
	return l, nil
}

// RestoreListing reconstructs a Listing from persistence, re-checking all
// invariants.
func RestoreListing(
	id, farmerID kernel.UUID,
	title, description, produceType string,
	price kernel.Money,
	quantity kernel.Quantity,
	unit string,
	location kernel.Location,
	imageURLs []string,
	status Status,
	views int64,
	suspendedBy *kernel.UUID,
	suspendedAt *time.Time,
	suspendedFor string,
	createdAt, updatedAt time.Time,
) (*Listing, error) {
	l := &Listing{
		description:   description,
		location:      location,
		imageURLs:     imageURLs,
		views:         views,
		suspendedBy:   suspendedBy,
		suspendedAt:   suspendedAt,
		suspendedFor:  suspendedFor,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setFarmerID(farmerID),
		l.setTitle(title),
		l.setProduceType(produceType),
		l.setUnit(unit),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	l.price = price
	l.quantity = quantity
	return l, nil
}

// Validate ensures the Listing was constructed through a factory function.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// IsEqual compares two listings by identity.
func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID { return l.id }

// FarmerID returns the owning farmer's identifier.
func (l *Listing) FarmerID() kernel.UUID { return l.farmerID }

// Title returns the listing title.
func (l *Listing) Title() string { return l.title }

// Description returns the free-form description, possibly empty.
func (l *Listing) Description() string { return l.description }

// ProduceType returns the produce category, e.g. "maize" or "tomatoes".
func (l *Listing) ProduceType() string { return l.produceType }

// Price returns the unit price.
func (l *Listing) Price() kernel.Money { return l.price }

// Quantity returns the last known remaining stock.
func (l *Listing) Quantity() kernel.Quantity { return l.quantity }

// Unit returns the unit of measure, e.g. "kg" or "bag".
func (l *Listing) Unit() string { return l.unit }

// Location returns where the produce is offered.
func (l *Listing) Location() kernel.Location { return l.location }

// ImageURLs returns the listing photos, possibly empty.
func (l *Listing) ImageURLs() []string { return l.imageURLs }

// Status returns the visibility status.
func (l *Listing) Status() Status { return l.status }

// Views returns the page view counter.
func (l *Listing) Views() int64 { return l.views }

// SuspendedBy returns the admin who suspended the listing, nil if not
// suspended.
func (l *Listing) SuspendedBy() *kernel.UUID { return l.suspendedBy }

// SuspendedAt returns when the listing was suspended, nil if not suspended.
func (l *Listing) SuspendedAt() *time.Time { return l.suspendedAt }

// SuspendedFor returns the suspension reason, empty if not suspended.
func (l *Listing) SuspendedFor() string { return l.suspendedFor }

// CreatedAt returns the listing creation time.
func (l *Listing) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns the last mutation time.
func (l *Listing) UpdatedAt() time.Time { return l.updatedAt }

// IsOrderable reports whether new orders may be placed against the listing.
func (l *Listing) IsOrderable() bool {
	return l.status == Active && !l.quantity.IsZero()
}

// UpdateDetails applies the fields a farmer may edit on their own listing.
// Empty strings and nil values leave the current values in place.
func (l *Listing) UpdateDetails(
	title, description, produceType string,
	price *kernel.Money,
	quantity *kernel.Quantity,
	unit string,
	location *kernel.Location,
	imageURLs []string,
	now time.Time,
) {
	if title != "" {
		l.title = title
	}
	if description != "" {
		l.description = description
	}
	if produceType != "" {
		l.produceType = produceType
	}
	if price != nil {
		l.price = *price
	}
	if quantity != nil {
		l.quantity = *quantity
	}
	if unit != "" {
		l.unit = unit
	}
	if location != nil {
		l.location = *location
	}
	if imageURLs != nil {
		l.imageURLs = imageURLs
	}
	l.updatedAt = now
}

// SetActive toggles owner visibility. A suspended listing cannot be
// reactivated by its owner.
func (l *Listing) SetActive(active bool, now time.Time) error {
	if l.status == Suspended {
		return errs.NewNotAuthorizedError("listing is suspended and can only be restored by an admin")
	}
	if active {
		l.status = Active
	} else {
		l.status = Inactive
	}
	l.updatedAt = now
	return nil
}

// Moderate sets the listing status on behalf of an admin. Moving into
// Suspended records who suspended the listing and why; moving out of it
// clears those fields.
func (l *Listing) Moderate(status Status, reason string, adminID kernel.UUID, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := adminID.Validate(); err != nil {
		return err
	}

	l.status = status
	if status == Suspended {
		l.suspendedBy = &adminID
		l.suspendedAt = &now
		l.suspendedFor = reason
	} else {
		l.suspendedBy = nil
		l.suspendedAt = nil
		l.suspendedFor = ""
	}
	l.updatedAt = now
	return nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.farmerID = id
	return nil
}

func (l *Listing) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setProduceType(produceType string) error {
	if produceType == "" {
		return errs.NewValueIsRequiredError("produceType")
	}
	l.produceType = produceType
	return nil
}

func (l *Listing) setUnit(unit string) error {
	if unit == "" {
		unit = "kg"
	}
	l.unit = unit
	return nil
}

func (l *Listing) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
