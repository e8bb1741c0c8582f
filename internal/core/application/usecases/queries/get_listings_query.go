// Package queries contains read operations for retrieving marketplace state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read optimized models straight from the
// database.
package queries

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/pkg/guard"
)

var ErrGetListingsQueryIsNotConstructed = errors.New(
	"GetListingsQuery must be created via NewGetListingsQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetListingsQuery retrieves the public produce catalogue, newest first.
// Results can be narrowed by produce type, state, a price range and a free
// text search over title and description, and are always paginated. Only
// active listings appear; hidden and suspended ones are filtered out.
type GetListingsQuery struct {
	produceType string
	state       string
	search      string
	minPrice    *float64
	maxPrice    *float64
	page        int
	pageSize    int

	guard guard.ConstructorGuard
}

// NewGetListingsQuery creates a catalogue query. Empty filter values and nil
// price bounds match everything. Page numbers below one and page sizes
// outside [1, 100] are normalized rather than rejected.
func NewGetListingsQuery(
	produceType, state, search string,
	minPrice, maxPrice *float64,
	page, pageSize int,
) GetListingsQuery {
	return GetListingsQuery{
		produceType: produceType,
		state:       state,
		search:      search,
		minPrice:    minPrice,
		maxPrice:    maxPrice,
		page:        normalizePage(page),
		pageSize:    normalizePageSize(pageSize),
		guard:       guard.NewConstructorGuard(),
	}
}

// ProduceType returns the produce category filter, empty for all.
func (q GetListingsQuery) ProduceType() string { return q.produceType }

// State returns the Nigerian state filter, empty for all.
func (q GetListingsQuery) State() string { return q.state }

// Search returns the free text filter, empty for all.
func (q GetListingsQuery) Search() string { return q.search }

// MinPrice returns the lower price bound, nil for none.
func (q GetListingsQuery) MinPrice() *float64 { return q.minPrice }

// MaxPrice returns the upper price bound, nil for none.
func (q GetListingsQuery) MaxPrice() *float64 { return q.maxPrice }

// Page returns the one-based page number.
func (q GetListingsQuery) Page() int { return q.page }

// PageSize returns the number of rows per page.
func (q GetListingsQuery) PageSize() int { return q.pageSize }

// Validate ensures the query was created through the constructor.
func (q GetListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetListingsQueryIsNotConstructed)
}

// ListingQueryResponse is the catalogue read model for one listing.
type ListingQueryResponse struct {
	ID          kernel.UUID
	FarmerID    kernel.UUID
	FarmerName  string
	Title       string
	Description string
	ProduceType string
	Price       float64
	Quantity    float64
	Unit        string
	Location    kernel.Location
	ImageURLs   []string
	Status      listing.Status
	Views       int64
	CreatedAt   time.Time
}

// GetListingsQueryResponse is one catalogue page together with the total row
// count, so callers can render pagination.
type GetListingsQueryResponse struct {
	Listings []ListingQueryResponse
	Total    int64
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}
