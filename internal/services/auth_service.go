package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cashflow/internal/dto"
	"cashflow/internal/models"
	"cashflow/internal/repositories"

	"github.com/google/uuid"
)

const expiredTokenBlacklistWindow = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("user with this username already exists")
)

// AuthService handles sign-up, sign-in and sign-out
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	auditLogger          AuditLoggerInterface
	metrics              MetricsRecorderInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		auditLogger:          auditLogger,
		metrics:              metrics,
	}
}

// SignUp registers a user and issues their first access token
func (s *AuthService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, *dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)

	existingUser, err := s.userRepo.GetByUsername(username)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, nil, ErrUsernameTaken
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	s.auditLogger.LogSignUp(ctx, user.ID, user.Username)
	s.recordAuthEvent("sign_up")

	return user, token, nil
}

// SignIn checks credentials and issues an access token
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*models.User, *dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditLogger.LogSignInFailed(ctx, username, "user_not_found")
			s.recordAuthEvent("sign_in_failed")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.auditLogger.LogSignInFailed(ctx, username, "invalid_password")
		s.recordAuthEvent("sign_in_failed")
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	s.auditLogger.LogSignIn(ctx, user.ID, user.Username)
	s.recordAuthEvent("sign_in")

	return user, token, nil
}

// SignOut revokes the access token by blacklisting its jti until it expires.
// Tokens that no longer validate are still blacklisted when a jti can be read
func (s *AuthService) SignOut(ctx context.Context, accessToken string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			if err := s.blacklistToken(jti, uuid.Nil, time.Now().Add(expiredTokenBlacklistWindow)); err != nil {
				slog.Error("Failed to blacklist expired token",
					"error", err,
					"jti", jti)
			}
		}
		return nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID in token", ErrInvalidToken)
	}

	expiresAt := time.Now().Add(expiredTokenBlacklistWindow)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := s.blacklistToken(claims.ID, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	s.auditLogger.LogSignOut(ctx, userID, claims.ID)
	s.recordAuthEvent("sign_out")

	return nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) blacklistToken(jti string, userID uuid.UUID, expiresAt time.Time) error {
	return s.blacklistedTokenRepo.Create(models.NewBlacklistedToken(jti, userID, expiresAt))
}

func (s *AuthService) recordAuthEvent(eventType string) {
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": eventType})
}
