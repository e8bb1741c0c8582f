package kernel_test

import (
	"math"
	"testing"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("positive_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(1500.50)

		require.NoError(t, err)
		assert.InDelta(t, 1500.50, m.Amount(), 0.0001)
	})

	t.Run("zero_is_valid", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Zero(t, m.Amount())
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("non_finite_amount_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(math.NaN())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewMoney(math.Inf(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Mul(t *testing.T) {
	price, err := kernel.NewMoney(500)
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(30)
	require.NoError(t, err)

	total := price.Mul(qty)

	assert.InDelta(t, 15000, total.Amount(), 0.0001)
}

func TestMoney_String(t *testing.T) {
	m, err := kernel.NewMoney(99.9)
	require.NoError(t, err)

	assert.Equal(t, "99.90", m.String())
}
