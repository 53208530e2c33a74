package dto

import (
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	ProfileURL string `json:"profile_url"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents the API request for changing the password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// UserResponse represents the API view of an account
type UserResponse struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	Approved   string   `json:"approved"`
	ProfileURL string   `json:"profile_url,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API view
func NewUserResponse(user *entity.User) UserResponse {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Roles:      roles,
		Approved:   string(user.Approved),
		ProfileURL: user.ProfileURL,
		CreatedAt:  user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewUserResponses maps a user slice to its API view
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UpdateUserRequest represents the admin API request for editing an account
type UpdateUserRequest struct {
	Username   *string `json:"username"`
	ProfileURL *string `json:"profile_url"`
	Approved   *string `json:"approved"`
}
