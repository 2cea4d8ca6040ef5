// Package auth provides authentication and authorization types for the REST API.
package auth

// LoginRequest defines the body for admin login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the issued token to the caller
type LoginResponse struct {
	Token string `json:"token"`
}
