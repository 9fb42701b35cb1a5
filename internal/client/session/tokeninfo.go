package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is a display-only peek inside a bearer token. The backend issues
// JWTs, so expiry and subject can be shown in the CLI status line.
//
// Claims are decoded WITHOUT signature verification. The backend remains the
// only authority on token validity; never use these fields for
// authorization decisions.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is in the past. A token
// without an exp claim never reports expired.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// ParseTokenInfo decodes the claims of raw. It fails when raw is not a JWT
// at all (the token is treated as opaque then).
func ParseTokenInfo(raw string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, err
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
