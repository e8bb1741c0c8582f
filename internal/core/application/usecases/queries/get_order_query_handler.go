package queries

import (
	"context"

	"agromarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order for one of its participants or an
// admin.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query. The participant check is part of
// the WHERE clause, so an outsider cannot distinguish a foreign order from a
// missing one. Admin reads skip the participant check.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	sql := "SELECT" + orderColumns + " FROM orders WHERE id = ?"
	args := []any{query.OrderID().Bytes()}
	if !query.AsAdmin() {
		sql += " AND (buyer_id = ? OR farmer_id = ?)"
		args = append(args, query.RequesterID().Bytes(), query.RequesterID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return OrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderQueryResponse{}, err
		}
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrderRow(rows.Scan)
}
