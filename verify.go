package tokenkit

import (
	"reflect"
	"time"
)

// Verify authenticates token with secret and returns the payload it carries.
//
// The signature is recomputed over the decoded payload bytes and compared in
// constant time before any deserialization happens, so unauthenticated input
// never reaches the JSON decoder. The expiration check runs last, against
// the clock at the moment of the call: a signature-valid but expired token
// fails with ErrExpiredToken, which keeps it distinguishable from a forged
// one (ErrInvalidSignature).
//
// The same secret used with Create must be supplied here; a different secret
// is indistinguishable from tampering.
func Verify[T Expirable](secret, token string) (T, error) {
	var zero T

	payloadSeg, signatureSeg, err := splitToken(token)
	if err != nil {
		return zero, err
	}

	data, err := decodeSegment(payloadSeg)
	if err != nil {
		return zero, err
	}
	signature, err := decodeSegment(signatureSeg)
	if err != nil {
		return zero, err
	}

	if !matchSignature(secret, data, signature) {
		return zero, ErrInvalidSignature
	}

	payload, err := unmarshalPayload[T](data)
	if err != nil {
		return zero, err
	}

	// A payload of JSON null deserializes into a nil pointer when T is a
	// pointer type; calling Exp on it would panic.
	if v := reflect.ValueOf(payload); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return zero, ErrDecoding
	}

	if expiredAt(payload.Exp(), time.Now().Unix()) {
		return zero, ErrExpiredToken
	}

	return payload, nil
}
