package jwtx

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime is used when no lifetime is configured.
const DefaultTokenLifetime = time.Hour

// Claims are the bearer token claims. The subject is the user's email;
// display name, role and lock state are loaded per request.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds claims for identity issued at now and expiring after ttl.
func NewClaims(identity, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// Identity returns the trimmed subject claim.
func (c *Claims) Identity() string {
	return strings.TrimSpace(c.Subject)
}
