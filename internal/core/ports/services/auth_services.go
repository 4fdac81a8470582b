package services

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade signs staff in and issues access tokens.
type AuthSvcFacade interface {
	// Login authenticates email/password credentials.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// Register creates a local staff account and signs it in.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// LoginWithGoogle exchanges a Google authorization code, finding or creating the staff user.
	LoginWithGoogle(ctx context.Context, code string) (*dto.AuthResponse, error)

	// GetUserByID retrieves a staff user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// GoogleOAuthSvc wraps the Google OAuth endpoints.
type GoogleOAuthSvc interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
