package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cashflow/internal/dto"
	"cashflow/internal/models"
	"cashflow/internal/repositories"

	"github.com/google/uuid"
)

// CategoryService manages user-owned categories. Any change drops the
// owner's cached analytics since entries carry category names and types
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	cache        AnalyticsCacheInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	cache AnalyticsCacheInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cache,
		auditLogger:  auditLogger,
		metrics:      metrics,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Type:   models.CategoryType(req.Type),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, mapCategoryRepoError(err, "create")
	}

	s.changed(ctx, userID, category.ID, "created")
	return category, nil
}

// List returns the user's categories, optionally restricted to one type
func (s *CategoryService) List(userID uuid.UUID, categoryType string) ([]models.Category, error) {
	t := models.CategoryType(categoryType)
	if categoryType != "" && !t.IsValid() {
		return nil, models.ErrInvalidCategoryType
	}

	categories, err := s.categoryRepo.ListByUser(userID, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		return nil, mapCategoryRepoError(err, "get")
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		return nil, mapCategoryRepoError(err, "get")
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		category.Type = models.CategoryType(*req.Type)
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, mapCategoryRepoError(err, "update")
	}

	s.changed(ctx, userID, category.ID, "updated")
	return category, nil
}

// Delete removes the category. Its transactions stay and become uncategorized
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(categoryID, userID); err != nil {
		return mapCategoryRepoError(err, "delete")
	}

	s.changed(ctx, userID, categoryID, "deleted")
	return nil
}

func (s *CategoryService) changed(ctx context.Context, userID, categoryID uuid.UUID, action string) {
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate analytics cache",
			"error", err,
			"user_id", userID,
			"category_id", categoryID)
	}

	s.auditLogger.LogCategoryChange(ctx, userID, categoryID, action)
	s.metrics.IncrementCounter(MetricCategoryChange, map[string]string{"action": action})
}

func mapCategoryRepoError(err error, op string) error {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repositories.ErrCategoryAlreadyExists):
		return ErrCategoryAlreadyExists
	default:
		return fmt.Errorf("failed to %s category: %w", op, err)
	}
}
