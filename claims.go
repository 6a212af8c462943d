package tokenkit

import (
	"time"

	"github.com/google/uuid"
)

// Claims is a ready-made payload carrying the fields most tokens need: a
// unique ID for deduplication or blacklisting, the subject the token was
// issued for, and the issue and expiration timestamps as Unix seconds.
//
// Embed it to attach application fields:
//
//	type SessionClaims struct {
//	    tokenkit.Claims
//	    Role string `json:"role"`
//	}
type Claims struct {
	ID        uuid.UUID `json:"jti"`
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  int64     `json:"iat"`
	ExpiresAt int64     `json:"exp"`
}

// NewClaims returns claims for subject expiring after ttl, stamped with a
// random unique ID and the current time.
func NewClaims(subject string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		ID:        uuid.New(),
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
}

// Exp returns the expiration timestamp, satisfying Expirable.
func (c Claims) Exp() int64 {
	return c.ExpiresAt
}
