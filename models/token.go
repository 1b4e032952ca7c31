package models

import "github.com/golang-jwt/jwt/v5"

// Token is an operator bearer token for the orchestration API. Its claims
// are the registered JWT claims; Operator mirrors "sub".
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	Operator     string `json:"-"`
}

// String returns the compact JWS form, ready for an Authorization header.
func (t *Token) String() string {
	return t.SignedString
}
