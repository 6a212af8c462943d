package tokenkit

import "errors"

// Token pipeline errors. Each failure mode has its own sentinel so callers
// can branch with errors.Is.
var (
	// ErrEncoding is returned when the payload cannot be serialized.
	ErrEncoding = errors.New("tokenkit: cannot encode payload")

	// ErrMalformedToken is returned when the token does not split into
	// exactly two non-empty segments around the delimiter.
	ErrMalformedToken = errors.New("tokenkit: malformed token")

	// ErrMalformedEncoding is returned when a token segment is not valid
	// base64url.
	ErrMalformedEncoding = errors.New("tokenkit: segment is not valid base64url")

	// ErrDecoding is returned when the payload bytes do not parse into the
	// target type.
	ErrDecoding = errors.New("tokenkit: cannot decode payload")

	// ErrInvalidSignature is returned when the recomputed signature does not
	// match the one the token carries.
	ErrInvalidSignature = errors.New("tokenkit: invalid signature")

	// ErrExpiredToken is returned when the signature is valid but the
	// expiration timestamp has passed.
	ErrExpiredToken = errors.New("tokenkit: token is expired")
)

// Issuer and configuration errors.
var (
	// ErrMissingSecret is returned when an Issuer is constructed without a
	// signing secret.
	ErrMissingSecret = errors.New("tokenkit: missing secret")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into a Config.
	ErrParsingConfig = errors.New("tokenkit: cannot parse environment configuration")

	// ErrSecretGeneration is returned when the system randomness source fails.
	ErrSecretGeneration = errors.New("tokenkit: secret generation failed")

	// ErrKeyDerivation is returned when a purpose-scoped secret cannot be
	// derived.
	ErrKeyDerivation = errors.New("tokenkit: key derivation failed")
)
