package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cashflow/internal/models"
	"cashflow/internal/repositories"

	"github.com/google/uuid"
)

// UserService serves the authenticated user's own profile
type UserService struct {
	userRepo    repositories.UserRepositoryInterface
	cache       AnalyticsCacheInterface
	auditLogger AuditLoggerInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface, cache AnalyticsCacheInterface, auditLogger AuditLoggerInterface) UserServiceInterface {
	return &UserService{
		userRepo:    userRepo,
		cache:       cache,
		auditLogger: auditLogger,
	}
}

func (s *UserService) GetMe(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// DeleteMe removes the user along with their categories, transactions and tokens
func (s *UserService) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate analytics cache", "error", err, "user_id", userID)
	}

	s.auditLogger.LogUserDeleted(ctx, userID)
	return nil
}
