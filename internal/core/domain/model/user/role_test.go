package user_test

import (
	"testing"

	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected user.Role
	}{
		{"farmer", user.RoleFarmer},
		{"buyer", user.RoleBuyer},
		{"admin", user.RoleAdmin},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := user.ParseRole(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
			assert.Equal(t, tc.input, role.String())
		})
	}

	t.Run("unrecognized_role_rejected", func(t *testing.T) {
		_, err := user.ParseRole("supplier")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_role_rejected", func(t *testing.T) {
		_, err := user.ParseRole("")
		require.Error(t, err)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, user.RoleFarmer.Validate())
	require.NoError(t, user.RoleBuyer.Validate())
	require.NoError(t, user.RoleAdmin.Validate())

	require.Error(t, user.RoleUnknown.Validate())
	require.Error(t, user.Role(42).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "unknown", user.RoleUnknown.String())
	assert.Equal(t, "unknown", user.Role(42).String())
	assert.Equal(t, "farmer", user.RoleFarmer.String())
}
