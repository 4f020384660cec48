package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	Email           string     `json:"email" db:"email" example:"teacher@school.edu.tw"`
	Password        string     `json:"-" db:"password"`
	Name            string     `json:"name" db:"name" example:"王小明"`
	Role            Role       `json:"role" db:"role" example:"teacher"`
	AssignedClasses []string   `json:"assignedClasses" db:"assigned_classes"`
	IsActive        bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Permission derives the visibility identity of the user.
func (u *User) Permission() Permission {
	return Permission{Role: u.Role, AssignedClasses: u.AssignedClasses}
}
