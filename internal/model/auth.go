package model

// Session is the persisted (token, user) pair representing an authenticated
// clinician. The token is opaque to callers; only its presence is checked.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
