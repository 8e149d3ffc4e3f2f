package dto

import "github.com/selim/coursereg/internal/app/models"

// RegisterRequest represents a new student registration
type RegisterRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// LoginRequest represents a name/ID login
type LoginRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Student *models.Student `json:"student"`
}
