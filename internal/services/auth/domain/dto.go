// Package domain holds DTOs for auth http and service contracts
package domain

// SignupInput is the payload for creating an account
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"hunter22"`
}

// LoginInput is the payload for authenticating
type LoginInput struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"hunter22"`
}

// User is the public account shape
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}
