package dto

// LoginRequest authenticates a user by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ExchangeCodeRequest carries a Google OAuth authorization code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
