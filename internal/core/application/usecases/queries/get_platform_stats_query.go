package queries

import (
	"errors"

	"agromarket/internal/pkg/guard"
)

var ErrGetPlatformStatsQueryIsNotConstructed = errors.New(
	"GetPlatformStatsQuery must be created via NewGetPlatformStatsQuery constructor",
)

// GetPlatformStatsQuery retrieves marketplace-wide counters for the admin
// dashboard.
type GetPlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatsQuery creates a dashboard query. This is a parameterless
// query over the whole marketplace.
func NewGetPlatformStatsQuery() GetPlatformStatsQuery {
	return GetPlatformStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatsQueryIsNotConstructed)
}

// GetPlatformStatsQueryResponse is the admin dashboard read model. Completed
// revenue sums the totals of completed orders only.
type GetPlatformStatsQueryResponse struct {
	TotalUsers       int64
	Farmers          int64
	Buyers           int64
	ActiveListings   int64
	TotalListings    int64
	TotalOrders      int64
	PendingOrders    int64
	CompletedOrders  int64
	CompletedRevenue float64
	ForumPosts       int64
}
