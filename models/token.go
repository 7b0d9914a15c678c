package models

import "github.com/golang-jwt/jwt/v5"

// Token is a signed JWT together with its registered claims.
//
// The subject claim carries the customer email.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact signed form of the token.
func (t Token) String() string {
	return t.SignedString
}
