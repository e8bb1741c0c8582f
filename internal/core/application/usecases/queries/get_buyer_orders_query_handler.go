package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a buyer's purchase history from the
// database.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for purchase history
// queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the purchase history query, newest orders first.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "buyer_id = ?"
	args := []any{query.BuyerID().Bytes()}
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
