package tokenkit

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds issuer configuration sourced from environment variables.
// The core functions never read the environment themselves; this is an
// opt-in construction path for services that configure everything through
// env vars.
type Config struct {
	// Secret is the primary signing secret.
	Secret string `env:"TOKEN_SECRET" envDefault:""`
	// VerifyOnlySecrets is a comma-separated list of previous secrets that
	// still verify existing tokens after a rotation.
	VerifyOnlySecrets string `env:"TOKEN_VERIFY_ONLY_SECRETS" envDefault:""`
	// TTL is the issue-to-expiry window for minted claims.
	TTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	// Purpose scopes the signing secret via DeriveSecret when non-empty.
	Purpose string `env:"TOKEN_PURPOSE" envDefault:""`
}

// DefaultConfig returns the configuration an Issuer uses when the
// corresponding environment variables are unset.
func DefaultConfig() Config {
	return Config{
		TTL: DefaultTTL,
	}
}

// LoadConfig populates a Config from the environment, preloading a .env
// file when one exists in the working directory.
func LoadConfig() (Config, error) {
	// Ignore the error - the .env file might not exist and that's ok.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// NewFromConfig builds an Issuer from cfg. Additional options are applied
// after the ones derived from the config, so they win on conflict.
func NewFromConfig(cfg Config, opts ...IssuerOption) (*Issuer, error) {
	configOpts := make([]IssuerOption, 0, 3+len(opts))

	if cfg.TTL != 0 {
		configOpts = append(configOpts, WithTTL(cfg.TTL))
	}
	if secrets := cfg.parseVerifyOnly(); len(secrets) > 0 {
		configOpts = append(configOpts, WithVerifyOnly(secrets...))
	}
	if cfg.Purpose != "" {
		configOpts = append(configOpts, WithPurpose(cfg.Purpose))
	}

	configOpts = append(configOpts, opts...)

	return NewIssuer(cfg.Secret, configOpts...)
}

// parseVerifyOnly splits the comma-separated rotation list, dropping empty
// entries and surrounding whitespace.
func (c Config) parseVerifyOnly() []string {
	if c.VerifyOnlySecrets == "" {
		return nil
	}

	parts := strings.Split(c.VerifyOnlySecrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}
