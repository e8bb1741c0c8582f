package queries

import (
	"context"
	"encoding/json"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetListingsQueryHandler reads the public catalogue from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetListingsQueryHandler creates a handler for catalogue queries.
func NewGetListingsQueryHandler(db *gorm.DB) GetListingsQueryHandler {
	return GetListingsQueryHandler{db: db}
}

// Handle executes the catalogue query. Returns one page of active listings,
// newest first, with the farmer's current name joined in.
func (h GetListingsQueryHandler) Handle(
	ctx context.Context,
	query GetListingsQuery,
) (GetListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetListingsQueryResponse{}, err
	}

	where := "l.status = ?"
	args := []any{int(listing.Active)}
	if query.ProduceType() != "" {
		where += " AND l.produce_type = ?"
		args = append(args, query.ProduceType())
	}
	if query.State() != "" {
		where += " AND l.location_state = ?"
		args = append(args, query.State())
	}
	if query.MinPrice() != nil {
		where += " AND l.price >= ?"
		args = append(args, *query.MinPrice())
	}
	if query.MaxPrice() != nil {
		where += " AND l.price <= ?"
		args = append(args, *query.MaxPrice())
	}
	if query.Search() != "" {
		where += " AND (l.title ILIKE ? OR l.description ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM listings l WHERE "+where, args...,
	).Scan(&total).Error
	if err != nil {
		return GetListingsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
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
		WHERE `+where+`
		ORDER BY l.created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return GetListingsQueryResponse{}, err
	}
	defer rows.Close()

	listings := make([]ListingQueryResponse, 0, query.PageSize())
	for rows.Next() {
		item, scanErr := scanListingRow(rows.Scan)
		if scanErr != nil {
			return GetListingsQueryResponse{}, scanErr
		}
		listings = append(listings, item)
	}

	if err = rows.Err(); err != nil {
		return GetListingsQueryResponse{}, err
	}

	return GetListingsQueryResponse{Listings: listings, Total: total}, nil
}

// scanListingRow reads one catalogue row. The scan callback must deliver the
// columns in the order the catalogue SELECT lists them.
func scanListingRow(scan func(...any) error) (ListingQueryResponse, error) {
	var item ListingQueryResponse
	var id, farmerID uuid.UUID
	var imageURLs []byte
	var status int

	err := scan(
		&id,
		&farmerID,
		&item.FarmerName,
		&item.Title,
		&item.Description,
		&item.ProduceType,
		&item.Price,
		&item.Quantity,
		&item.Unit,
		&item.Location.State,
		&item.Location.LGA,
		&item.Location.Address,
		&imageURLs,
		&status,
		&item.Views,
		&item.CreatedAt,
	)
	if err != nil {
		return ListingQueryResponse{}, err
	}

	listingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ListingQueryResponse{}, err
	}
	item.ID = listingID

	ownerID, err := kernel.UUIDFromBytes(farmerID[:])
	if err != nil {
		return ListingQueryResponse{}, err
	}
	item.FarmerID = ownerID

	if len(imageURLs) > 0 {
		if err = json.Unmarshal(imageURLs, &item.ImageURLs); err != nil {
			return ListingQueryResponse{}, err
		}
	}
	item.Status = listing.Status(status)

	return item, nil
}
