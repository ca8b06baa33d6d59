package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of the bearer token issued by the bookstore backend.
// The subject holds the customer's email.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID string `json:"customerId,omitempty"`
	Role       Role   `json:"role,omitempty"`
}

// ParseClaims decodes the token payload without verifying its signature.
// The result is informational: the backend remains the only authority, and
// expiry is never enforced on the client.
func ParseClaims(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMalformedToken
	}
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return &claims, nil
}

// Email returns the token subject.
func (c *Claims) Email() string {
	return c.Subject
}

// Expiry returns the token expiration time, or zero if the token has none.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
