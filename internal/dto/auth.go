package dto

// TokenRequest is the identity payload posted to the token endpoint. It is
// signed as given; no validation is applied here.
type TokenRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}
