package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two token families. Each kind is signed with
// its own secret.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims is the JWT claim set used by both token kinds.
//
// RegisteredClaims carries iss, sub (user id), iat, exp and jti.
// The profile fields are set only on access tokens and are informational;
// authorization always reloads the user from the store.
type TokenClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// UserID returns the "sub" claim.
func (c TokenClaims) UserID() string {
	return c.Subject
}

// Token is a signed JWT together with the claims it was built from.
type Token struct {
	Kind TokenKind `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	ExpiresAt time.Time `json:"-"`

	Claims TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
