package tokenkit

// Create serializes payload, signs the canonical bytes with secret using
// HMAC-SHA256, and returns the compact token string.
//
// Creation is deterministic: the same payload and secret always produce the
// same token, there is no nonce or randomness in the scheme. The payload is
// signed, not encrypted; anyone holding the token can read it with Decode.
//
// The only possible failure is ErrEncoding when the payload cannot be
// serialized.
func Create[T any](payload T, secret string) (string, error) {
	data, err := marshalPayload(payload)
	if err != nil {
		return "", err
	}

	signature := computeSignature(secret, data)

	return assembleToken(encodeSegment(data), encodeSegment(signature)), nil
}
