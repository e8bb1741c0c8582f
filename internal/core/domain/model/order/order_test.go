package order_test

import (
	"testing"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	order    *order.Order
	buyerID  kernel.UUID
	farmerID kernel.UUID
}

func newTestOrder(t *testing.T) orderFixture {
	t.Helper()

	buyerID := kernel.NewUUID()
	farmerID := kernel.NewUUID()

	qty, err := kernel.NewQuantity(5)
	require.NoError(t, err)
	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		buyerID,
		farmerID,
		"Fresh Maize",
		qty,
		price,
		"Chidi Okafor", "+2348011111111",
		"Amina Bello", "+2348022222222",
		"12 Airport Rd, Kano",
		time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return orderFixture{order: o, buyerID: buyerID, farmerID: farmerID}
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order", func(t *testing.T) {
		f := newTestOrder(t)
		o := f.order

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "Fresh Maize", o.ListingTitle())
		assert.InEpsilon(t, 6000.0, o.TotalPrice().Amount(), 1e-9)
		assert.Nil(t, o.AcceptedAt())
		assert.True(t, o.IsParticipant(f.buyerID))
		assert.True(t, o.IsParticipant(f.farmerID))
		assert.False(t, o.IsParticipant(kernel.NewUUID()))
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		qty, err := kernel.NewQuantity(0)
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "Maize", qty, kernel.Money{}, "", "", "", "", "", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_listing_id_rejected", func(t *testing.T) {
		qty, err := kernel.NewQuantity(1)
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			kernel.NewUUID(), "Maize", qty, kernel.Money{}, "", "", "", "", "", time.Now())

		require.Error(t, err)
	})
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order

	err := o.Validate()

	require.Error(t, err)
	assert.Equal(t, order.ErrOrderIsNotConstructed, err)
}

func TestOrder_ChangeStatus_Authorization(t *testing.T) {
	t.Run("farmer_accepts", func(t *testing.T) {
		f := newTestOrder(t)

		effect, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockReserve, effect)
		assert.Equal(t, order.Accepted, f.order.Status())
	})

	t.Run("buyer_cannot_accept", func(t *testing.T) {
		f := newTestOrder(t)

		_, err := f.order.ChangeStatus(order.Accepted, f.buyerID, time.Now())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Pending, f.order.Status())
	})

	t.Run("stranger_cannot_decline", func(t *testing.T) {
		f := newTestOrder(t)

		_, err := f.order.ChangeStatus(order.Declined, kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("only_buyer_completes", func(t *testing.T) {
		f := newTestOrder(t)
		_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())
		require.NoError(t, err)
		_, err = f.order.ChangeStatus(order.Shipped, f.farmerID, time.Now())
		require.NoError(t, err)

		_, err = f.order.ChangeStatus(order.Completed, f.farmerID, time.Now())
		require.ErrorIs(t, err, errs.ErrNotAuthorized)

		effect, err := f.order.ChangeStatus(order.Completed, f.buyerID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, order.StockNone, effect)
	})

	t.Run("either_side_cancels", func(t *testing.T) {
		f := newTestOrder(t)

		effect, err := f.order.ChangeStatus(order.Cancelled, f.buyerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockNone, effect)
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		f := newTestOrder(t)

		_, err := f.order.ChangeStatus(order.Unknown, f.farmerID, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus_StockEffects(t *testing.T) {
	t.Run("accepting_reserves_stock", func(t *testing.T) {
		f := newTestOrder(t)

		effect, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockReserve, effect)
	})

	t.Run("declining_accepted_order_releases_stock", func(t *testing.T) {
		f := newTestOrder(t)
		_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())
		require.NoError(t, err)

		effect, err := f.order.ChangeStatus(order.Declined, f.farmerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockRelease, effect)
	})

	t.Run("cancelling_accepted_order_releases_stock", func(t *testing.T) {
		f := newTestOrder(t)
		_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())
		require.NoError(t, err)

		effect, err := f.order.ChangeStatus(order.Cancelled, f.buyerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockRelease, effect)
	})

	t.Run("declining_pending_order_is_neutral", func(t *testing.T) {
		f := newTestOrder(t)

		effect, err := f.order.ChangeStatus(order.Declined, f.farmerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockNone, effect)
	})

	t.Run("re_accepting_does_not_reserve_twice", func(t *testing.T) {
		f := newTestOrder(t)
		_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())
		require.NoError(t, err)

		effect, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockNone, effect)
	})

	t.Run("shipping_is_neutral", func(t *testing.T) {
		f := newTestOrder(t)
		_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())
		require.NoError(t, err)

		effect, err := f.order.ChangeStatus(order.Shipped, f.farmerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StockNone, effect)
	})
}

func TestOrder_ChangeStatus_Timestamps(t *testing.T) {
	f := newTestOrder(t)
	acceptedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	shippedAt := acceptedAt.Add(24 * time.Hour)

	_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, acceptedAt)
	require.NoError(t, err)
	_, err = f.order.ChangeStatus(order.Shipped, f.farmerID, shippedAt)
	require.NoError(t, err)

	require.NotNil(t, f.order.AcceptedAt())
	assert.Equal(t, acceptedAt, *f.order.AcceptedAt())
	require.NotNil(t, f.order.ShippedAt())
	assert.Equal(t, shippedAt, *f.order.ShippedAt())
	assert.Nil(t, f.order.CompletedAt())
	assert.Equal(t, shippedAt, f.order.UpdatedAt())
}

func TestOrder_ChangeStatus_RepeatedStatusRestampsTimestamp(t *testing.T) {
	f := newTestOrder(t)
	firstAccept := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	secondAccept := firstAccept.Add(2 * time.Hour)

	_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, firstAccept)
	require.NoError(t, err)
	_, err = f.order.ChangeStatus(order.Accepted, f.farmerID, secondAccept)
	require.NoError(t, err)

	assert.Equal(t, order.Accepted, f.order.Status())
	require.NotNil(t, f.order.AcceptedAt())
	assert.Equal(t, secondAccept, *f.order.AcceptedAt())
	assert.Equal(t, secondAccept, f.order.UpdatedAt())
}

func TestOrder_CancelByBuyer(t *testing.T) {
	t.Run("buyer_withdraws_pending_order", func(t *testing.T) {
		f := newTestOrder(t)
		now := time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC)

		require.NoError(t, f.order.CancelByBuyer(f.buyerID, now))

		assert.Equal(t, order.Cancelled, f.order.Status())
		require.NotNil(t, f.order.CancelledAt())
		assert.Equal(t, now, *f.order.CancelledAt())
	})

	t.Run("farmer_cannot_withdraw", func(t *testing.T) {
		f := newTestOrder(t)

		err := f.order.CancelByBuyer(f.farmerID, time.Now())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Pending, f.order.Status())
	})

	t.Run("accepted_order_cannot_be_withdrawn", func(t *testing.T) {
		f := newTestOrder(t)
		_, err := f.order.ChangeStatus(order.Accepted, f.farmerID, time.Now())
		require.NoError(t, err)

		err = f.order.CancelByBuyer(f.buyerID, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Accepted, f.order.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	acceptedAt := created.Add(time.Hour)

	qty, err := kernel.NewQuantity(3)
	require.NoError(t, err)
	price, err := kernel.NewMoney(500)
	require.NoError(t, err)

	t.Run("valid_row", func(t *testing.T) {
		o, err := order.RestoreOrder(id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Tomatoes", qty, price, price.Mul(qty), order.Accepted,
			"Chidi", "", "Amina", "", "",
			&acceptedAt, nil, nil, nil, nil, created, acceptedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.AcceptedAt())
		assert.Equal(t, acceptedAt, *o.AcceptedAt())
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Tomatoes", qty, price, price.Mul(qty), order.Unknown,
			"", "", "", "", "",
			nil, nil, nil, nil, nil, created, created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
