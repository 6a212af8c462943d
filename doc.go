// Package tokenkit provides compact, signed, expiring tokens for embedding
// JSON payloads.
//
// Tokens are signed with HMAC-SHA256 and carry the full 32-byte signature,
// making them suitable for session handles, password resets, email
// confirmations, and similar short-lived credentials. Tokens are signed, not
// encrypted: anyone holding a token can read its payload, so never embed
// secrets in it.
//
// # Token Format
//
//	base64url(payload).base64url(signature)
//
// Both segments use unpadded base64url; decoding is strict and rejects CR
// and LF, so every token has exactly one accepted spelling. The payload is
// the JSON encoding of the caller's struct, the signature is HMAC-SHA256
// over those exact payload bytes. Identical payload and secret always
// produce an identical token.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenkit"
//
//	type Session struct {
//	    UserID    string `json:"uid"`
//	    ExpiresAt int64  `json:"exp"`
//	}
//
//	func (s Session) Exp() int64 { return s.ExpiresAt }
//
//	const secret = "my-very-strong-secret"
//
//	tok, err := tokenkit.Create(Session{"42", time.Now().Add(time.Hour).Unix()}, secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := tokenkit.Verify[Session](secret, tok)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Verify checks the signature before touching the payload, then rejects
// tokens whose expiration time has passed. Decode skips both checks and
// should only be used for non-security inspection such as logging or
// debugging.
//
// For services that prefer configured instances over free functions, Issuer
// bundles a secret with a default TTL, supports secret rotation, and mints
// Claims with unique IDs:
//
//	issuer, err := tokenkit.NewIssuer(secret, tokenkit.WithTTL(15*time.Minute))
//	tok, claims, err := issuer.IssueClaims("user-42")
//	parsed, err := issuer.VerifyClaims(tok)
//
// # Error Handling
//
// All failures are reported through sentinel errors comparable with
// errors.Is:
//
//   - ErrEncoding: the payload cannot be serialized
//   - ErrMalformedToken: the token does not have exactly two non-empty segments
//   - ErrMalformedEncoding: a segment is not valid base64url
//   - ErrInvalidSignature: the signature does not match the payload
//   - ErrDecoding: the payload does not deserialize into the target type
//   - ErrExpiredToken: the expiration time has passed
//
// An expired token still carries a valid signature, so callers can
// distinguish "authentic but stale" (ErrExpiredToken) from "forged or
// corrupted" (ErrInvalidSignature).
//
// # Security Notes
//
// Secrets should be at least 32 bytes of randomness; GenerateSecret produces
// a suitable value. Signature comparison is constant-time. Expiration uses an
// inclusive boundary, a token is already expired at its exact expiration
// second. The package does not bound token length, so callers accepting
// tokens from untrusted input should enforce their own limit before calling
// Verify.
package tokenkit
