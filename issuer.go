package tokenkit

import (
	"slices"
	"time"
)

// DefaultTTL is the issue-to-expiry window applied to claims minted by an
// Issuer built without WithTTL.
const DefaultTTL = time.Hour

// Issuer binds a signing secret and a default expiry window so callers that
// keep one secret for the process lifetime do not have to thread it through
// every call. The package-level Create, Verify and Decode remain the way to
// work with per-call secrets.
//
// An Issuer holds no other state and is safe for concurrent use.
type Issuer struct {
	secret     string
	verifyOnly []string
	ttl        time.Duration
	purpose    string
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithTTL overrides DefaultTTL for claims minted by IssueClaims.
// Non-positive values fall back to DefaultTTL.
func WithTTL(ttl time.Duration) IssuerOption {
	return func(i *Issuer) { i.ttl = ttl }
}

// WithVerifyOnly registers previous signing secrets that still verify
// existing tokens. New tokens are always signed with the primary secret;
// when to rotate and where secrets live stays with the caller.
func WithVerifyOnly(secrets ...string) IssuerOption {
	return func(i *Issuer) { i.verifyOnly = append(i.verifyOnly, secrets...) }
}

// WithPurpose scopes every secret to purpose via DeriveSecret, so tokens
// minted by this issuer never verify under an issuer with a different
// purpose even when both share the same master secret.
func WithPurpose(purpose string) IssuerOption {
	return func(i *Issuer) { i.purpose = purpose }
}

// NewIssuer returns an Issuer signing with secret. The secret must be
// non-empty; at least RecommendedSecretLength bytes of entropy is advised.
func NewIssuer(secret string, opts ...IssuerOption) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	iss := &Issuer{
		secret: secret,
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(iss)
	}

	if iss.ttl <= 0 {
		iss.ttl = DefaultTTL
	}
	iss.verifyOnly = slices.DeleteFunc(iss.verifyOnly, func(s string) bool { return s == "" })

	if iss.purpose != "" {
		derived, err := DeriveSecret(iss.secret, iss.purpose)
		if err != nil {
			return nil, err
		}
		iss.secret = derived

		for n, s := range iss.verifyOnly {
			if iss.verifyOnly[n], err = DeriveSecret(s, iss.purpose); err != nil {
				return nil, err
			}
		}
	}

	return iss, nil
}

// Issue signs payload with the issuer's secret and returns the compact
// token. Accepts any JSON-serializable payload; the expiration is whatever
// the payload itself carries.
func (i *Issuer) Issue(payload any) (string, error) {
	return Create(payload, i.secret)
}

// IssueClaims mints Claims for subject using the issuer's TTL, signs them,
// and returns both the token and the claims it carries.
func (i *Issuer) IssueClaims(subject string) (string, Claims, error) {
	claims := NewClaims(subject, i.ttl)

	token, err := Create(claims, i.secret)
	if err != nil {
		return "", Claims{}, err
	}

	return token, claims, nil
}

// Verify authenticates token against the issuer's secrets and deserializes
// the payload into dst, which must be a pointer. Secrets registered with
// WithVerifyOnly are tried after the primary one, so tokens minted before a
// rotation keep verifying; a token that matches none fails with
// ErrInvalidSignature exactly like a tampered one.
func (i *Issuer) Verify(token string, dst Expirable) error {
	payloadSeg, signatureSeg, err := splitToken(token)
	if err != nil {
		return err
	}

	data, err := decodeSegment(payloadSeg)
	if err != nil {
		return err
	}
	signature, err := decodeSegment(signatureSeg)
	if err != nil {
		return err
	}

	if !i.match(data, signature) {
		return ErrInvalidSignature
	}

	if err := unmarshalInto(data, dst); err != nil {
		return err
	}

	if expiredAt(dst.Exp(), time.Now().Unix()) {
		return ErrExpiredToken
	}

	return nil
}

// VerifyClaims authenticates token and returns the Claims it carries.
func (i *Issuer) VerifyClaims(token string) (Claims, error) {
	var claims Claims
	if err := i.Verify(token, &claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// Decode extracts a token's payload into dst without any signature or
// expiration check. Unsafe for trust decisions; see the package-level
// Decode.
func (i *Issuer) Decode(token string, dst any) error {
	payloadSeg, signatureSeg, err := splitToken(token)
	if err != nil {
		return err
	}

	data, err := decodeSegment(payloadSeg)
	if err != nil {
		return err
	}
	if _, err := decodeSegment(signatureSeg); err != nil {
		return err
	}

	return unmarshalInto(data, dst)
}

// match tries the primary secret first, then any rotated ones. Each attempt
// uses a constant-time comparison.
func (i *Issuer) match(payload, signature []byte) bool {
	if matchSignature(i.secret, payload, signature) {
		return true
	}
	for _, secret := range i.verifyOnly {
		if matchSignature(secret, payload, signature) {
			return true
		}
	}
	return false
}
