package loyalty_test

import (
	"testing"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/loyalty"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	testCases := []struct {
		totalEarned int64
		expected    loyalty.Tier
	}{
		{0, loyalty.TierBronze},
		{499, loyalty.TierBronze},
		{500, loyalty.TierSilver},
		{1999, loyalty.TierSilver},
		{2000, loyalty.TierGold},
		{4999, loyalty.TierGold},
		{5000, loyalty.TierPlatinum},
		{100000, loyalty.TierPlatinum},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, loyalty.TierFor(tc.totalEarned),
			"totalEarned=%d", tc.totalEarned)
	}
}

func TestParseTier(t *testing.T) {
	tier, err := loyalty.ParseTier("gold")
	require.NoError(t, err)
	assert.Equal(t, loyalty.TierGold, tier)

	_, err = loyalty.ParseTier("diamond")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPointsForOrder(t *testing.T) {
	testCases := []struct {
		total    float64
		expected int64
	}{
		{0, 10},
		{99, 19},
		{100, 20},
		{6000, 610},
		{12345.67, 1244},
	}

	for _, tc := range testCases {
		total, err := kernel.NewMoney(tc.total)
		require.NoError(t, err)

		assert.Equal(t, tc.expected, loyalty.PointsForOrder(total), "total=%v", tc.total)
	}
}

func TestNewAccount(t *testing.T) {
	a, err := loyalty.NewAccount(kernel.NewUUID(), time.Now())

	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.EqualValues(t, 0, a.Points())
	assert.EqualValues(t, 0, a.TotalEarned())
	assert.Equal(t, loyalty.TierBronze, a.Tier())

	_, err = loyalty.NewAccount(kernel.UUID{}, time.Now())
	require.Error(t, err)
}

func TestAccount_Earn(t *testing.T) {
	a, err := loyalty.NewAccount(kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	t.Run("crossing_threshold_promotes_tier", func(t *testing.T) {
		require.NoError(t, a.Earn(450, time.Now()))
		assert.Equal(t, loyalty.TierBronze, a.Tier())

		require.NoError(t, a.Earn(50, time.Now()))
		assert.Equal(t, loyalty.TierSilver, a.Tier())
		assert.EqualValues(t, 500, a.Points())
		assert.EqualValues(t, 500, a.TotalEarned())
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		require.ErrorIs(t, a.Earn(0, time.Now()), errs.ErrValueIsInvalid)
		require.ErrorIs(t, a.Earn(-10, time.Now()), errs.ErrValueIsInvalid)
	})
}

func TestAccount_Spend(t *testing.T) {
	a, err := loyalty.NewAccount(kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, a.Earn(600, time.Now()))

	t.Run("spending_keeps_tier_and_lifetime_total", func(t *testing.T) {
		require.NoError(t, a.Spend(550, time.Now()))

		assert.EqualValues(t, 50, a.Points())
		assert.EqualValues(t, 600, a.TotalEarned())
		assert.Equal(t, loyalty.TierSilver, a.Tier())
	})

	t.Run("overdraft_rejected", func(t *testing.T) {
		err := a.Spend(1000, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.EqualValues(t, 50, a.Points())
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		require.ErrorIs(t, a.Spend(0, time.Now()), errs.ErrValueIsInvalid)
	})
}

func TestRestoreAccount(t *testing.T) {
	userID := kernel.NewUUID()

	a, err := loyalty.RestoreAccount(userID, 120, 2100, time.Now())

	require.NoError(t, err)
	assert.EqualValues(t, 120, a.Points())
	assert.Equal(t, loyalty.TierGold, a.Tier(), "tier is derived from lifetime total")
}
