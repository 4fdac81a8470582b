package dto

import (
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

// LoginRequest holds staff email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a staff account with a local password.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// GoogleExchangeRequest carries the authorization code returned by Google to the dashboard.
type GoogleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the public view of a staff user.
type UserResponse struct {
	UserID        string     `json:"userID"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	AuthProvider  string     `json:"authProvider"`
	EmailVerified bool       `json:"emailVerified"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

// AuthResponse is returned by every successful sign-in.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		AuthProvider:  string(u.AuthProvider),
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
	}
}

// NewAuthResponse wraps an issued access token.
func NewAuthResponse(u *domain.User, accessToken string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        ToUserResponse(u),
	}
}
