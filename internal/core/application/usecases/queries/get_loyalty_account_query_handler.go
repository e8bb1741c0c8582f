package queries

import (
	"context"
	"database/sql"
	"errors"

	"agromarket/internal/core/domain/model/loyalty"

	"gorm.io/gorm"
)

// GetLoyaltyAccountQueryHandler reads an account's points balance from the
// database.
type GetLoyaltyAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetLoyaltyAccountQueryHandler creates a handler for points balance
// queries.
func NewGetLoyaltyAccountQueryHandler(db *gorm.DB) GetLoyaltyAccountQueryHandler {
	return GetLoyaltyAccountQueryHandler{db: db}
}

// Handle executes the points balance query. A missing row is not an error;
// it reads as zero points at the bronze tier.
func (h GetLoyaltyAccountQueryHandler) Handle(
	ctx context.Context,
	query GetLoyaltyAccountQuery,
) (GetLoyaltyAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoyaltyAccountQueryResponse{}, err
	}

	response := GetLoyaltyAccountQueryResponse{UserID: query.UserID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT points, total_earned FROM loyalty_accounts WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&response.Points, &response.TotalEarned)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return GetLoyaltyAccountQueryResponse{}, err
	}

	response.Tier = loyalty.TierFor(response.TotalEarned)
	return response, nil
}
