package dto

import "github.com/aichat/backend/internal/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

// UserListResponse is returned by the protected user listing.
type UserListResponse struct {
	Users []models.User `json:"users"`
	Count int           `json:"count"`
}
