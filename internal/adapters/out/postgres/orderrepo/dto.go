// Package orderrepo persists order aggregates with their contact and title
// snapshots.
package orderrepo

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO maps the order aggregate onto the orders table.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ListingID       uuid.UUID  `gorm:"type:uuid;index"`
	BuyerID         uuid.UUID  `gorm:"type:uuid;index"`
	FarmerID        uuid.UUID  `gorm:"type:uuid;index"`
	ListingTitle    string     `gorm:""`
	Quantity        float64    `gorm:""`
	UnitPrice       float64    `gorm:""`
	TotalPrice      float64    `gorm:""`
	Status          int        `gorm:"index"`
	BuyerName       string     `gorm:""`
	BuyerPhone      string     `gorm:""`
	FarmerName      string     `gorm:""`
	FarmerPhone     string     `gorm:""`
	DeliveryAddress string     `gorm:""`
	AcceptedAt      *time.Time `gorm:""`
	DeclinedAt      *time.Time `gorm:""`
	ShippedAt       *time.Time `gorm:""`
	CompletedAt     *time.Time `gorm:""`
	CancelledAt     *time.Time `gorm:""`
	CreatedAt       time.Time  `gorm:""`
	UpdatedAt       time.Time  `gorm:""`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ListingID:       aggregate.ListingID().Bytes(),
		BuyerID:         aggregate.BuyerID().Bytes(),
		FarmerID:        aggregate.FarmerID().Bytes(),
		ListingTitle:    aggregate.ListingTitle(),
		Quantity:        aggregate.Quantity().Value(),
		UnitPrice:       aggregate.UnitPrice().Amount(),
		TotalPrice:      aggregate.TotalPrice().Amount(),
		Status:          int(aggregate.Status()),
		BuyerName:       aggregate.BuyerName(),
		BuyerPhone:      aggregate.BuyerPhone(),
		FarmerName:      aggregate.FarmerName(),
		FarmerPhone:     aggregate.FarmerPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		AcceptedAt:      aggregate.AcceptedAt(),
		DeclinedAt:      aggregate.DeclinedAt(),
		ShippedAt:       aggregate.ShippedAt(),
		CompletedAt:     aggregate.CompletedAt(),
		CancelledAt:     aggregate.CancelledAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, listingID, buyerID, farmerID,
		dto.ListingTitle,
		quantity,
		unitPrice, totalPrice,
		order.Status(dto.Status),
		dto.BuyerName, dto.BuyerPhone, dto.FarmerName, dto.FarmerPhone, dto.DeliveryAddress,
		dto.AcceptedAt, dto.DeclinedAt, dto.ShippedAt, dto.CompletedAt, dto.CancelledAt,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
