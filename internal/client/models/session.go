// Package models defines the value types exchanged between the vault client
// layers: sessions, file items, upload tickets, and analysis results.
package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity describes the authenticated user as reported by the backend.
type Identity struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// OwnerID is the identifier scoping the user's files: the email when
// present, otherwise the user id. Every object key owned by this user is
// prefixed "<OwnerID>/".
func (i Identity) OwnerID() string {
	if i.Email != "" {
		return i.Email
	}
	return i.UserID
}

// Session is the authenticated state of the client: a bearer token plus the
// identity it belongs to. A session exists iff the user is authenticated;
// no expiry is checked client-side.
type Session struct {
	Token    string
	Identity Identity
}

// Authenticated reports whether a token is present. The token alone decides;
// a missing identity still counts as authenticated (the backend will reject
// calls it cannot scope).
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// NewSession builds a session from a login response. When the backend omits
// the user object the identity falls back to the token's unverified JWT
// claims; the token was just issued over TLS by the party that signed it, so
// signature verification here would add nothing the client can check.
func NewSession(token string, user *Identity) Session {
	s := Session{Token: token}
	if user != nil {
		s.Identity = *user
		return s
	}
	s.Identity = identityFromToken(token)
	return s
}

func identityFromToken(token string) Identity {
	var claims jwt.MapClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Identity{}
	}

	var id Identity
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["sub"].(string); ok {
		id.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		id.DisplayName = v
	}
	return id
}
