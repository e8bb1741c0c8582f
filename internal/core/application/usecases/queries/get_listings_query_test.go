package queries_test

import (
	"testing"

	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetListingsQuery_Valid(t *testing.T) {
	minPrice := 200.0
	maxPrice := 800.0

	query := queries.NewGetListingsQuery("tomatoes", "Kano", "fresh", &minPrice, &maxPrice, 2, 10)

	require.NoError(t, query.Validate())
	assert.Equal(t, "tomatoes", query.ProduceType())
	assert.Equal(t, "Kano", query.State())
	assert.Equal(t, "fresh", query.Search())
	require.NotNil(t, query.MinPrice())
	assert.Equal(t, 200.0, *query.MinPrice())
	require.NotNil(t, query.MaxPrice())
	assert.Equal(t, 800.0, *query.MaxPrice())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 10, query.PageSize())
}

func TestNewGetListingsQuery_EmptyFilters_MatchAll(t *testing.T) {
	query := queries.NewGetListingsQuery("", "", "", nil, nil, 1, 20)

	assert.Empty(t, query.ProduceType())
	assert.Empty(t, query.Search())
	assert.Nil(t, query.MinPrice())
	assert.Nil(t, query.MaxPrice())
}

func TestNewGetListingsQuery_NormalizesPagination(t *testing.T) {
	query := queries.NewGetListingsQuery("", "", "", nil, nil, 0, 0)
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.PageSize())

	query = queries.NewGetListingsQuery("", "", "", nil, nil, -3, 1000)
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 100, query.PageSize())
}

func TestGetListingsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetListingsQuery{}

	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetListingsQueryIsNotConstructed)
}

func TestNewGetListingQuery_InvalidID_ReturnsError(t *testing.T) {
	_, err := queries.NewGetListingQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetListingQuery_Valid(t *testing.T) {
	listingID := kernel.NewUUID()

	query, err := queries.NewGetListingQuery(listingID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, listingID, query.ListingID())
}
