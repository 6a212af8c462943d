package tokenkit

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Delimiter separates the payload segment from the signature segment. It is
// not part of the base64url alphabet, so it can never occur inside a segment.
const Delimiter = "."

// segmentEncoding is unpadded base64url with strict decoding, which
// rejects non-zero unused trailing bits in a segment's last character.
// Together with the newline check in decodeSegment this gives every
// byte sequence exactly one accepted text form.
var segmentEncoding = base64.RawURLEncoding.Strict()

// encodeSegment encodes raw bytes as base64url text without padding.
func encodeSegment(data []byte) string {
	return segmentEncoding.EncodeToString(data)
}

// decodeSegment decodes a single base64url token segment. CR and LF are
// rejected up front because DecodeString skips them even in strict mode;
// padding characters and non-canonical trailing bits are rejected along
// with anything else outside the URL-safe alphabet.
func decodeSegment(segment string) ([]byte, error) {
	if strings.ContainsAny(segment, "\r\n") {
		return nil, ErrMalformedEncoding
	}
	data, err := segmentEncoding.DecodeString(segment)
	if err != nil {
		return nil, errors.Join(ErrMalformedEncoding, err)
	}
	return data, nil
}

// assembleToken joins the encoded payload and signature segments into the
// final token string.
func assembleToken(payload, signature string) string {
	return payload + Delimiter + signature
}

// splitToken splits a token back into its payload and signature segments.
// A token is well-formed only when it contains exactly one delimiter and
// both segments are non-empty; nothing else is validated here.
func splitToken(token string) (payload, signature string, err error) {
	parts := strings.Split(token, Delimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedToken
	}
	return parts[0], parts[1], nil
}
