package tokenkit

// Expirable is the single capability a payload must expose for verification:
// its expiration time as a signed 64-bit Unix timestamp in seconds.
//
// Any serializable type with an expiration field satisfies it with a one-line
// method; Claims is a ready-made implementation.
type Expirable interface {
	// Exp returns the expiration time as Unix seconds.
	Exp() int64
}

// expiredAt reports whether a payload expiring at exp is expired at now.
// The boundary is inclusive: a token expiring exactly "now" is already
// expired, not valid for one more instant.
func expiredAt(exp, now int64) bool {
	return exp <= now
}
