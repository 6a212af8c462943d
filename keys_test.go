package tokenkit_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokenkit"
)

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	t.Run("produces full-entropy base64url secrets", func(t *testing.T) {
		t.Parallel()
		secret, err := tokenkit.GenerateSecret()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(secret)
		require.NoError(t, err)
		assert.Len(t, raw, tokenkit.RecommendedSecretLength)
	})

	t.Run("secrets are unique", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{})
		for range 32 {
			secret, err := tokenkit.GenerateSecret()
			require.NoError(t, err)

			_, dup := seen[secret]
			require.False(t, dup, "generated a duplicate secret")
			seen[secret] = struct{}{}
		}
	})
}

func TestDeriveSecret(t *testing.T) {
	t.Parallel()

	const master = "master-secret-that-is-32-chars!!"

	t.Run("deterministic for the same purpose", func(t *testing.T) {
		t.Parallel()
		first, err := tokenkit.DeriveSecret(master, "password-reset")
		require.NoError(t, err)
		second, err := tokenkit.DeriveSecret(master, "password-reset")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, master, first)
	})

	t.Run("purposes produce independent secrets", func(t *testing.T) {
		t.Parallel()
		reset, err := tokenkit.DeriveSecret(master, "password-reset")
		require.NoError(t, err)
		confirm, err := tokenkit.DeriveSecret(master, "email-confirm")
		require.NoError(t, err)

		assert.NotEqual(t, reset, confirm)
	})

	t.Run("masters produce independent secrets", func(t *testing.T) {
		t.Parallel()
		fromA, err := tokenkit.DeriveSecret("master-a", "invite")
		require.NoError(t, err)
		fromB, err := tokenkit.DeriveSecret("master-b", "invite")
		require.NoError(t, err)

		assert.NotEqual(t, fromA, fromB)
	})

	t.Run("empty purpose is the identity", func(t *testing.T) {
		t.Parallel()
		derived, err := tokenkit.DeriveSecret(master, "")
		require.NoError(t, err)
		assert.Equal(t, master, derived)
	})

	t.Run("derived secrets sign and verify", func(t *testing.T) {
		t.Parallel()
		derived, err := tokenkit.DeriveSecret(master, "invite")
		require.NoError(t, err)

		payload := testPayload{UserID: "user-42", ExpiresAt: time.Now().Add(time.Hour).Unix()}
		token, err := tokenkit.Create(payload, derived)
		require.NoError(t, err)

		got, err := tokenkit.Verify[testPayload](derived, token)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		_, err = tokenkit.Verify[testPayload](master, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, tokenkit.ErrInvalidSignature)
	})
}
