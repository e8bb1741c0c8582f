package queries

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderQueryResponse is the read model for one order. Names and phone numbers
// are the snapshots taken when the order was placed.
type OrderQueryResponse struct {
	ID              kernel.UUID
	ListingID       kernel.UUID
	BuyerID         kernel.UUID
	FarmerID        kernel.UUID
	ListingTitle    string
	Quantity        float64
	UnitPrice       float64
	TotalPrice      float64
	Status          order.Status
	BuyerName       string
	BuyerPhone      string
	FarmerName      string
	FarmerPhone     string
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// orderColumns is the SELECT list scanOrderRow expects, in order.
const orderColumns = `
	id,
	listing_id,
	buyer_id,
	farmer_id,
	listing_title,
	quantity,
	unit_price,
	total_price,
	status,
	buyer_name,
	buyer_phone,
	farmer_name,
	farmer_phone,
	delivery_address,
	created_at,
	updated_at`

func scanOrderRow(scan func(...any) error) (OrderQueryResponse, error) {
	var item OrderQueryResponse
	var id, listingID, buyerID, farmerID uuid.UUID
	var status int

	err := scan(
		&id,
		&listingID,
		&buyerID,
		&farmerID,
		&item.ListingTitle,
		&item.Quantity,
		&item.UnitPrice,
		&item.TotalPrice,
		&status,
		&item.BuyerName,
		&item.BuyerPhone,
		&item.FarmerName,
		&item.FarmerPhone,
		&item.DeliveryAddress,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderQueryResponse{}, err
	}
	if item.ListingID, err = kernel.UUIDFromBytes(listingID[:]); err != nil {
		return OrderQueryResponse{}, err
	}
	if item.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return OrderQueryResponse{}, err
	}
	if item.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
		return OrderQueryResponse{}, err
	}
	item.Status = order.Status(status)

	return item, nil
}
