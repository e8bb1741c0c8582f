package commands_test

import (
	"testing"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	listingID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	qty := mustQuantity(t, 10)
	cmd, err := commands.NewCreateOrderCommand(orderID, listingID, buyerID, qty, "12 Airport Rd")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, listingID, cmd.ListingID())
	assert.Equal(t, buyerID, cmd.BuyerID())
	assert.Equal(t, qty, cmd.Quantity())
	assert.Equal(t, "12 Airport Rd", cmd.DeliveryAddress())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, kernel.NewUUID(), kernel.NewUUID(), mustQuantity(t, 10), "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.Quantity{}, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewCreateOrderCommand_EmptyAddressAllowed(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), mustQuantity(t, 1), "",
	)
	require.NoError(t, err)
	assert.Empty(t, cmd.DeliveryAddress())
}
