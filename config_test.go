package tokenkit_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokenkit"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := tokenkit.DefaultConfig()
	assert.Empty(t, cfg.Secret)
	assert.Empty(t, cfg.VerifyOnlySecrets)
	assert.Equal(t, tokenkit.DefaultTTL, cfg.TTL)
	assert.Empty(t, cfg.Purpose)
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("TOKEN_SECRET", testSecret)
		t.Setenv("TOKEN_VERIFY_ONLY_SECRETS", "old-one,old-two")
		t.Setenv("TOKEN_TTL", "30m")
		t.Setenv("TOKEN_PURPOSE", "session")

		cfg, err := tokenkit.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, testSecret, cfg.Secret)
		assert.Equal(t, "old-one,old-two", cfg.VerifyOnlySecrets)
		assert.Equal(t, 30*time.Minute, cfg.TTL)
		assert.Equal(t, "session", cfg.Purpose)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		os.Unsetenv("TOKEN_SECRET")
		os.Unsetenv("TOKEN_VERIFY_ONLY_SECRETS")
		os.Unsetenv("TOKEN_TTL")
		os.Unsetenv("TOKEN_PURPOSE")

		cfg, err := tokenkit.LoadConfig()
		require.NoError(t, err)

		assert.Empty(t, cfg.Secret)
		assert.Equal(t, tokenkit.DefaultTTL, cfg.TTL)
		assert.Empty(t, cfg.Purpose)
	})

	t.Run("rejects an unparsable TTL", func(t *testing.T) {
		t.Setenv("TOKEN_TTL", "soon")

		_, err := tokenkit.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, tokenkit.ErrParsingConfig)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("builds a working issuer", func(t *testing.T) {
		t.Parallel()
		cfg := tokenkit.Config{
			Secret: testSecret,
			TTL:    15 * time.Minute,
		}

		issuer, err := tokenkit.NewFromConfig(cfg)
		require.NoError(t, err)

		token, claims, err := issuer.IssueClaims("user-42")
		require.NoError(t, err)
		assert.Equal(t, int64(15*60), claims.ExpiresAt-claims.IssuedAt)

		got, err := issuer.VerifyClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", got.Subject)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()
		_, err := tokenkit.NewFromConfig(tokenkit.Config{TTL: time.Hour})
		require.Error(t, err)
		assert.ErrorIs(t, err, tokenkit.ErrMissingSecret)
	})

	t.Run("rotation secrets are parsed from the list", func(t *testing.T) {
		t.Parallel()
		const oldSecret = "previous-secret-32-chars-long!!!"

		oldIssuer, err := tokenkit.NewIssuer(oldSecret)
		require.NoError(t, err)
		token, _, err := oldIssuer.IssueClaims("user-42")
		require.NoError(t, err)

		cfg := tokenkit.Config{
			Secret:            testSecret,
			VerifyOnlySecrets: " " + oldSecret + " , ,unused-secret",
		}
		issuer, err := tokenkit.NewFromConfig(cfg)
		require.NoError(t, err)

		got, err := issuer.VerifyClaims(token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", got.Subject)
	})

	t.Run("purpose from config scopes the secret", func(t *testing.T) {
		t.Parallel()
		cfg := tokenkit.Config{Secret: testSecret, Purpose: "invite"}

		issuer, err := tokenkit.NewFromConfig(cfg)
		require.NoError(t, err)

		token, _, err := issuer.IssueClaims("user-42")
		require.NoError(t, err)

		// The raw secret must not verify purpose-scoped tokens.
		_, err = tokenkit.Verify[tokenkit.Claims](testSecret, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, tokenkit.ErrInvalidSignature)
	})

	t.Run("explicit options win over config", func(t *testing.T) {
		t.Parallel()
		cfg := tokenkit.Config{Secret: testSecret, TTL: time.Hour}

		issuer, err := tokenkit.NewFromConfig(cfg, tokenkit.WithTTL(5*time.Minute))
		require.NoError(t, err)

		_, claims, err := issuer.IssueClaims("user-42")
		require.NoError(t, err)
		assert.Equal(t, int64(5*60), claims.ExpiresAt-claims.IssuedAt)
	})
}
