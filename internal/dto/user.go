package dto

// CreateUserRequest is the first-sign-in profile payload.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// UpdateUserRequest carries a partial profile update.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
}
