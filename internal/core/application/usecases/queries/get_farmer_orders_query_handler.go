package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetFarmerOrdersQueryHandler reads the incoming orders on a farmer's
// listings from the database.
type GetFarmerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetFarmerOrdersQueryHandler creates a handler for sales queries.
func NewGetFarmerOrdersQueryHandler(db *gorm.DB) GetFarmerOrdersQueryHandler {
	return GetFarmerOrdersQueryHandler{db: db}
}

// Handle executes the sales query, newest orders first.
func (h GetFarmerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetFarmerOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "farmer_id = ?"
	args := []any{query.FarmerID().Bytes()}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, int(*query.Status()))
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT"+orderColumns+" FROM orders WHERE "+where+" ORDER BY created_at DESC",
		args...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderQueryResponse, 0)
	for rows.Next() {
		item, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
