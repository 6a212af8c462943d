package tokenkit

import (
	"encoding/json"
	"errors"
)

// marshalPayload produces the canonical byte form of a payload using JSON.
//
// The encoding is deterministic: struct fields marshal in declaration order
// and map keys marshal sorted, so the same logical payload serializes to
// byte-identical output across calls and process restarts. The signature is
// computed over these exact bytes.
func marshalPayload(payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Join(ErrEncoding, err)
	}
	return data, nil
}

// unmarshalInto parses canonical payload bytes into dst, which must be a
// pointer to the target payload value.
func unmarshalInto(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Join(ErrDecoding, err)
	}
	return nil
}

// unmarshalPayload parses canonical payload bytes into a fresh value of T.
func unmarshalPayload[T any](data []byte) (T, error) {
	var payload T
	if err := unmarshalInto(data, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
