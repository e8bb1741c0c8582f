package queries

import (
	"context"
	"database/sql"
	"errors"

	"agromarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetListingQueryHandler reads one listing with its farmer's name joined in.
type GetListingQueryHandler struct {
	db *gorm.DB
}

// NewGetListingQueryHandler creates a handler for listing detail queries.
func NewGetListingQueryHandler(db *gorm.DB) GetListingQueryHandler {
	return GetListingQueryHandler{db: db}
}

// Handle executes the listing detail query.
func (h GetListingQueryHandler) Handle(
	ctx context.Context,
	query GetListingQuery,
) (ListingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListingQueryResponse{}, err
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
		WHERE l.id = ?
	`, query.ListingID().Bytes()).Rows()
	if err != nil {
		return ListingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ListingQueryResponse{}, err
		}
		return ListingQueryResponse{}, errs.NewObjectNotFoundError("listing", query.ListingID().String())
	}

	item, err := scanListingRow(rows.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListingQueryResponse{}, errs.NewObjectNotFoundError("listing", query.ListingID().String())
		}
		return ListingQueryResponse{}, err
	}

	return item, nil
}
