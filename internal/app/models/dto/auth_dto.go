package dto

import (
	"time"

	"github.com/yigit/homeroom/internal/app/models"
)

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"teacher@school.edu.tw"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int          `json:"expiresIn" example:"43200"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	User        UserResponse `json:"user"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID              int64       `json:"id" example:"1"`
	Email           string      `json:"email" example:"teacher@school.edu.tw"`
	Name            string      `json:"name" example:"林老師"`
	Role            models.Role `json:"role" example:"teacher" enums:"admin,teacher,part-time"`
	RoleLabel       string      `json:"roleLabel" example:"導師"`
	AssignedClasses []string    `json:"assignedClasses"`
	IsActive        bool        `json:"isActive" example:"true"`
	LastLoginAt     *time.Time  `json:"lastLoginAt,omitempty"`
}

// NewUserResponse converts a user model
func NewUserResponse(u *models.User) UserResponse {
	classes := u.AssignedClasses
	if classes == nil {
		classes = []string{}
	}
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		RoleLabel:       u.Role.Label(),
		AssignedClasses: classes,
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
	}
}

// CreateUserRequest is used by admins to add an account
type CreateUserRequest struct {
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	Name            string   `json:"name" binding:"required,max=100"`
	Role            string   `json:"role" binding:"required,oneof=admin teacher part-time"`
	AssignedClasses []string `json:"assignedClasses" binding:"omitempty,dive,required"`
}

// UpdateUserRequest changes role, classes or status of an account
type UpdateUserRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=100"`
	Role            *string  `json:"role" binding:"omitempty,oneof=admin teacher part-time"`
	AssignedClasses []string `json:"assignedClasses" binding:"omitempty,dive,required"`
	IsActive        *bool    `json:"isActive"`
	Password        *string  `json:"password" binding:"omitempty,min=8"`
}
