package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the identity payload carried by the session cookie. Only
// the email claim is load-bearing; everything else is signed as given.
type TokenClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
	jwt.RegisteredClaims
}
