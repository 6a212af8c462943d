package tokenkit

// Decode extracts a token's payload without checking the signature or the
// expiration.
//
// It is unsafe for trust decisions: a decoded payload proves nothing about
// who produced it or whether it was modified in transit. Use it to cheaply
// introspect a token that Verify has already accepted, or for debugging.
// Everywhere else, use Verify.
//
// Structural validation still applies: a token that does not split into two
// non-empty base64url segments fails with ErrMalformedToken or
// ErrMalformedEncoding, and payload bytes that do not parse into T fail
// with ErrDecoding.
func Decode[T any](token string) (T, error) {
	var zero T

	payloadSeg, signatureSeg, err := splitToken(token)
	if err != nil {
		return zero, err
	}

	data, err := decodeSegment(payloadSeg)
	if err != nil {
		return zero, err
	}
	if _, err := decodeSegment(signatureSeg); err != nil {
		return zero, err
	}

	return unmarshalPayload[T](data)
}
