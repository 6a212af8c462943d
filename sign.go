package tokenkit

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// SignatureSize is the size in bytes of a raw token signature: a full
// HMAC-SHA256 digest, never truncated.
const SignatureSize = sha256.Size

// computeSignature returns the HMAC-SHA256 digest of the canonical payload
// bytes keyed by secret. HMAC is a pure function of key and message, so the
// same inputs always produce the same digest.
func computeSignature(secret string, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}

// matchSignature reports whether candidate is the digest of payload under
// secret. The comparison is constant-time in the digest length so the
// running time never reveals where the first differing byte occurs. A
// candidate of the wrong length is a mismatch, not an error.
func matchSignature(secret string, payload, candidate []byte) bool {
	expected := computeSignature(secret, payload)
	return subtle.ConstantTimeCompare(expected, candidate) == 1
}
