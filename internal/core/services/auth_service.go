package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/platform/config"
	"github.com/ashirovtech/shop_dashboard/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// AuthService signs staff in with a password or a Google account and issues access tokens.
type AuthService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	google   portssvc.GoogleOAuthSvc
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, googleSvc portssvc.GoogleOAuthSvc) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, google: googleSvc}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login for unknown email")
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login with wrong password", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return s.issue(ctx, user)
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "Staff user registered", slog.String("user_id", userID))
	return s.issue(ctx, &user)
}

// LoginWithGoogle exchanges the code, verifies the ID token and resolves the staff user.
// A Google identity is matched first by subject, then by verified email; otherwise a user is created.
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (*dto.AuthResponse, error) {
	token, err := s.google.ExchangeCodeForToken(ctx, code)
	if err != nil {
		s.LogInfo(ctx, "Google code exchange failed", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: google sign-in failed", apperrors.ErrUnauthorized)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: google response carried no ID token", apperrors.ErrUnauthorized)
	}
	payload, err := s.google.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		s.LogInfo(ctx, "Google ID token rejected", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: google sign-in failed", apperrors.ErrUnauthorized)
	}

	email := normalizeEmail(claimString(payload, "email"))
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, fmt.Errorf("%w: google account email is not verified", apperrors.ErrUnauthorized)
	}

	user, err := s.resolveGoogleUser(ctx, payload.Subject, email, claimString(payload, "name"))
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *AuthService) resolveGoogleUser(ctx context.Context, subject, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up google user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		// Link the existing account to this Google identity.
		user.AuthProvider = domain.ProviderGoogle
		user.ProviderUserID = subject
		user.EmailVerified = true
		user.Touch(user.UserID, now)
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			s.LogError(ctx, err, "Failed to link google identity", slog.String("user_id", user.UserID))
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		s.LogInfo(ctx, "Linked google identity to existing user", slog.String("user_id", user.UserID))
		return user, nil
	case errors.Is(err, apperrors.ErrNotFound):
		userID := uuid.NewString()
		if name == "" {
			name = email
		}
		newUser := domain.User{
			UserID:         userID,
			Name:           name,
			Email:          email,
			AuthProvider:   domain.ProviderGoogle,
			ProviderUserID: subject,
			EmailVerified:  true,
			AuditFields:    domain.NewAuditFields(userID, now),
		}
		if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
			s.LogError(ctx, err, "Failed to save google user")
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.LogInfo(ctx, "Created user from google sign-in", slog.String("user_id", userID))
		return &newUser, nil
	default:
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
}

func claimString(payload *idtoken.Payload, key string) string {
	v, _ := payload.Claims[key].(string)
	return v
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// issue records the sign-in and signs an access token for user.
func (s *AuthService) issue(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	now := time.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.UserID, now); err != nil {
		// A stale last-login timestamp must not block sign-in.
		s.LogError(ctx, err, "Failed to record last login", slog.String("user_id", user.UserID))
	} else {
		user.LastLoginAt = &now
	}

	accessToken, expiresAt, err := utils.GenerateAccessToken(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	resp := dto.NewAuthResponse(user, accessToken, expiresAt)
	return &resp, nil
}

// GoogleOAuthService talks to Google's OAuth endpoints.
type GoogleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	return &GoogleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvc = (*GoogleOAuthService)(nil)

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *GoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.cfg.GoogleClientID == "" || s.cfg.GoogleClientSecret == "" {
		return nil, errors.New("google sign-in is not configured")
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns its payload.
func (s *GoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
