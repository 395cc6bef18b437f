package dto

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// RegisterRequest defines the payload for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed JWT returned by register/login.
type AuthResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the user data exposed by the API.
type UserResponse struct {
	UserID        string `json:"userID"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	AuthProvider  string `json:"authProvider"`
	EmailVerified bool   `json:"emailVerified"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Email:         user.Email,
		Name:          user.Name,
		AuthProvider:  string(user.AuthProvider),
		EmailVerified: user.EmailVerified,
	}
}
