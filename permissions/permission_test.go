package permissions_test

import (
	"testing"

	"riviera/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	t.Run("gateway callback route skips authentication", func(t *testing.T) {
		// Monetbil and CinetPay notify server-to-server with no session
		// token; the finalize handler re-verifies the charge with the
		// gateway before touching any state.
		perm := data.FindPermissions("/v1/payments/finalize", "POST")

		assert.Equal(t, "/v1/payments/finalize", perm.Path)
		assert.True(t, perm.Skip)
		assert.Empty(t, perm.Permissions)
	})

	t.Run("payment initiation requires a session", func(t *testing.T) {
		perm := data.FindPermissions("/v1/payments/initiate", "POST")

		assert.Equal(t, "/v1/payments/initiate", perm.Path)
		assert.False(t, perm.Skip)
	})

	t.Run("admin listing requires elevated roles", func(t *testing.T) {
		perm := data.FindPermissions("/v1/payments/", "GET")

		assert.False(t, perm.Skip)
		assert.Contains(t, perm.Permissions, "admin")
	})

	t.Run("unknown route yields zero value", func(t *testing.T) {
		perm := data.FindPermissions("/v1/nope", "GET")

		assert.Empty(t, perm.Path)
		assert.False(t, perm.Skip)
	})
}
