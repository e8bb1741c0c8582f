package queries

import (
	"context"

	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetPlatformStatsQueryHandler reads marketplace-wide counters from the
// database.
type GetPlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatsQueryHandler creates a handler for dashboard queries.
func NewGetPlatformStatsQueryHandler(db *gorm.DB) GetPlatformStatsQueryHandler {
	return GetPlatformStatsQueryHandler{db: db}
}

// Handle executes the dashboard query.
func (h GetPlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatsQuery,
) (GetPlatformStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	var response GetPlatformStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = @farmer),
			(SELECT COUNT(*) FROM users WHERE role = @buyer),
			(SELECT COUNT(*) FROM listings WHERE status = @active),
			(SELECT COUNT(*) FROM listings),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = @pending),
			(SELECT COUNT(*) FROM orders WHERE status = @completed),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status = @completed),
			(SELECT COUNT(*) FROM forum_posts)
	`, map[string]any{
		"farmer":    int(user.RoleFarmer),
		"buyer":     int(user.RoleBuyer),
		"active":    int(listing.Active),
		"pending":   int(order.Pending),
		"completed": int(order.Completed),
	}).Row()

	err := row.Scan(
		&response.TotalUsers,
		&response.Farmers,
		&response.Buyers,
		&response.ActiveListings,
		&response.TotalListings,
		&response.TotalOrders,
		&response.PendingOrders,
		&response.CompletedOrders,
		&response.CompletedRevenue,
		&response.ForumPosts,
	)
	if err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	return response, nil
}
