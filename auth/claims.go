package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the decoded, verified claims of a token
type AuthClaims interface {
	Subject() string
	Role() string
	HasRole(role string) bool
	IsAtLeast(minRole string) bool
	Expires() time.Time
	IssuedAt() time.Time
}

// TokenClaims is the concrete implementation of AuthClaims. The claim set is
// fixed: subject, issued-at, expires-at, and the account role. Claims are only
// ever populated from a signature-verified token.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserRole UserRole `json:"role,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*TokenClaims)(nil)

// Subject returns the subject claim, the username the token was minted for
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Role returns the account role carried by the token
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// HasRole checks if the token carries a specific role
func (c *TokenClaims) HasRole(role string) bool {
	return c.UserRole == role
}

// IsAtLeast checks if the token's role is at least the minimum required role
func (c *TokenClaims) IsAtLeast(minRole string) bool {
	return IsAtLeast(c.UserRole, UserRole(minRole))
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
