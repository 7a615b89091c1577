package api

import (
	"github.com/moviedeck/moviedeck/internal/domain"
	"github.com/moviedeck/moviedeck/internal/errors"
)

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs. Every response carries the success flag; error responses
// carry a message and, for validation failures, per-field details.

type AuthResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token"`
	User    *domain.UserView `json:"user"`
}

type UserResponse struct {
	Success bool             `json:"success"`
	User    *domain.UserView `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}
