package repository

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for token operations.
// GenerateToken takes exactly the fields that belong in the token payload;
// no user struct crosses this boundary, so incidental fields can never leak
// into a signed token.
type TokenService interface {
	GenerateToken(ctx context.Context, userID, username, role string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents verified JWT claims. Values are only trustworthy after
// ValidateToken has checked the signature; the session client has its own
// unverified claims type for display purposes.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim, which carries the user ID.
func (c *Claims) UserID() string {
	return c.Subject
}

// HasRole reports whether the claims carry the given role.
func (c *Claims) HasRole(role string) bool {
	return c.Role == role
}
