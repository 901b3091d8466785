// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/angelamos/streamora/internal/user"
)

type RegisterRequest struct {
	Name     string  `json:"name"     validate:"required,min=1,max=100"`
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=128"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  user.UserResponse `json:"user"`
	Token string            `json:"token"`
}
