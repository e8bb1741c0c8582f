package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetFarmerListingsQueryHandler reads a farmer's own inventory, all statuses
// included.
type GetFarmerListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetFarmerListingsQueryHandler creates a handler for inventory queries.
func NewGetFarmerListingsQueryHandler(db *gorm.DB) GetFarmerListingsQueryHandler {
	return GetFarmerListingsQueryHandler{db: db}
}

// Handle executes the inventory query, newest listings first.
func (h GetFarmerListingsQueryHandler) Handle(
	ctx context.Context,
	query GetFarmerListingsQuery,
) ([]ListingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.farmer_id,
			u.name,
			l.title,
			l.description,
			l.produce_type,
			l.price,
			l.quantity,
			l.unit,
			l.location_state,
			l.location_lga,
			l.location_address,
			l.image_urls,
			l.status,
			l.views,
			l.created_at
		FROM listings l
		JOIN users u ON u.id = l.farmer_id
		WHERE l.farmer_id = ?
		ORDER BY l.created_at DESC
	`, query.FarmerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]ListingQueryResponse, 0)
	for rows.Next() {
		item, scanErr := scanListingRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		listings = append(listings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
