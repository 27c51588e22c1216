package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// GuestName is displayed when no identity can be read from storage.
const GuestName = "Guest"

// DisplayClaims is the identity a client shows in its chrome: a name in the
// header, a role next to it. It is decoded without signature verification and
// must never be used for access decisions; the server re-verifies every
// request.
type DisplayClaims struct {
	UserID   string
	Username string
	Role     string
}

type displayTokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity reads the stored token and decodes its payload for display. Any
// failure along the way (no token, undecodable token, blank username) falls
// back to a Guest identity rather than an error; a broken token degrades the
// greeting, not the page.
func (c *Client) Identity() DisplayClaims {
	token, ok := c.store.Get(TokenKey)
	if !ok || token == "" {
		return guestClaims()
	}
	return DecodeDisplayClaims(token)
}

// DecodeDisplayClaims decodes a token payload without verifying its
// signature. Use only for rendering; verified claims come from the server.
func DecodeDisplayClaims(token string) DisplayClaims {
	var claims displayTokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return guestClaims()
	}
	if claims.Username == "" {
		return guestClaims()
	}
	return DisplayClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}
}

func guestClaims() DisplayClaims {
	return DisplayClaims{Username: GuestName}
}

// IsGuest reports whether the claims are the Guest fallback.
func (d DisplayClaims) IsGuest() bool {
	return d.UserID == "" && d.Username == GuestName
}
