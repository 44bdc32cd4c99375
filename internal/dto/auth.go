package dto

import "github.com/activitydash/activity_dashboard_app/internal/core/domain"

// LoginRequest is the credentials payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of a user, safe to return to clients.
type UserResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// LoginResponse is returned on successful login; the session token itself
// travels in the auth-token cookie, not the body.
type LoginResponse struct {
	User    UserResponse `json:"user"`
	Success bool         `json:"success"`
}

// UpdateEmailRequest is the payload for POST /api/auth/update-email.
type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest is the payload for POST /api/auth/update-password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ToUserResponse converts a domain.User to its public DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	}
}
