package dto

import (
	"alumni-portal/internal/identity"
	"alumni-portal/internal/models"
)

type SignupUserData struct {
	Name        string `json:"name" validate:"required,max=200"`
	Role        string `json:"role,omitempty"`
	Institution string `json:"institution,omitempty"`
	Department  string `json:"department,omitempty"`
}

type SignupRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6,max=72"`
	UserData SignupUserData `json:"userData"`
}

type SignupResponse struct {
	User identity.Identity `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}
