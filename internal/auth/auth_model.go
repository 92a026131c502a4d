package auth

import "time"

// LoginRequest carries the operator's credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"scorer"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Operator    string    `json:"operator"`
}

// Credentials configure the single scoring operator account.
type Credentials struct {
	Username      string
	PasswordHash  string
	Secret        string
	ExpiryMinutes int
}
