// Package listingrepo persists listing aggregates, including the conditional
// stock updates behind order acceptance.
package listingrepo

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO maps the listing aggregate onto the listings table.
type ListingDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FarmerID     uuid.UUID   `gorm:"type:uuid;index"`
	Title        string      `gorm:""`
	Description  string      `gorm:""`
	ProduceType  string      `gorm:"index"`
	Price        float64     `gorm:""`
	Quantity     float64     `gorm:""`
	Unit         string      `gorm:""`
	Location     LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	ImageURLs    []string    `gorm:"serializer:json"`
	Status       int         `gorm:"index"`
	Views        int64       `gorm:""`
	SuspendedBy  *uuid.UUID  `gorm:"type:uuid"`
	SuspendedAt  *time.Time  `gorm:""`
	SuspendedFor string      `gorm:""`
	CreatedAt    time.Time   `gorm:""`
	UpdatedAt    time.Time   `gorm:""`
}

// TableName overrides GORM's default naming to use "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

// LocationDTO is the embedded Nigerian address within the listings table.
type LocationDTO struct {
	State   string
	LGA     string
	Address string
}

func fromDomain(aggregate *listing.Listing) ListingDTO {
	var suspendedBy *uuid.UUID
	if id := aggregate.SuspendedBy(); id != nil {
		raw := id.Bytes()
		suspendedBy = &raw
	}

	return ListingDTO{
		ID:          aggregate.ID().Bytes(),
		FarmerID:    aggregate.FarmerID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		ProduceType: aggregate.ProduceType(),
		Price:       aggregate.Price().Amount(),
		Quantity:    aggregate.Quantity().Value(),
		Unit:        aggregate.Unit(),
		Location: LocationDTO{
			State:   aggregate.Location().State,
			LGA:     aggregate.Location().LGA,
			Address: aggregate.Location().Address,
		},
		ImageURLs:    aggregate.ImageURLs(),
		Status:       int(aggregate.Status()),
		Views:        aggregate.Views(),
		SuspendedBy:  suspendedBy,
		SuspendedAt:  aggregate.SuspendedAt(),
		SuspendedFor: aggregate.SuspendedFor(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	var suspendedBy *kernel.UUID
	if dto.SuspendedBy != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.SuspendedBy)[:])
		if sErr != nil {
			return nil, sErr
		}
		suspendedBy = &sID
	}

	return listing.RestoreListing(
		id,
		farmerID,
		dto.Title,
		dto.Description,
		dto.ProduceType,
		price,
		quantity,
		dto.Unit,
		kernel.Location{State: dto.Location.State, LGA: dto.Location.LGA, Address: dto.Location.Address},
		dto.ImageURLs,
		listing.Status(dto.Status),
		dto.Views,
		suspendedBy,
		dto.SuspendedAt,
		dto.SuspendedFor,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
