package queries_test

import (
	"testing"

	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID, requesterID, false)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, requesterID, query.RequesterID())
	assert.False(t, query.AsAdmin())
}

func TestNewGetOrderQuery_AdminFlagIsKept(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), true)

	require.NoError(t, err)
	assert.True(t, query.AsAdmin())
}

func TestNewGetOrderQuery_InvalidIDs_ReturnsError(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(kernel.NewUUID(), kernel.UUID{}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}

	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
