package tokenkit

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// RecommendedSecretLength is the secret size in bytes that preserves the
// full HMAC-SHA256 security margin. Shorter secrets are accepted, weak
// secrets are the caller's decision, but anything below this should stay
// out of production.
const RecommendedSecretLength = 32

// derivationContext namespaces HKDF derivations so other consumers of the
// same master secret cannot collide with token signing keys.
const derivationContext = "tokenkit-v1"

// GenerateSecret returns a fresh random secret with RecommendedSecretLength
// bytes of entropy, encoded as base64url text safe for environment
// variables and config files.
func GenerateSecret() (string, error) {
	buf := make([]byte, RecommendedSecretLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrSecretGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// DeriveSecret deterministically derives a purpose-scoped signing secret
// from secret using HKDF-SHA256.
//
// Tokens signed under one purpose never verify under another, so a single
// master secret can safely back independent token kinds (password reset,
// email confirmation, invite links) without letting a token minted for one
// flow be replayed in another. An empty purpose returns the secret
// unchanged.
func DeriveSecret(secret, purpose string) (string, error) {
	if purpose == "" {
		return secret, nil
	}

	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(derivationContext+":"+purpose))

	key := make([]byte, RecommendedSecretLength)
	if _, err := io.ReadFull(reader, key); err != nil {
		return "", errors.Join(ErrKeyDerivation, err)
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}
