package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cashflow/internal/analytics"
	"cashflow/internal/dto"
	"cashflow/internal/models"
	"cashflow/internal/repositories"

	"github.com/google/uuid"
)

// CategoryReferenceError reports a categoryId that is missing or owned by
// another user
type CategoryReferenceError struct {
	CategoryID string
}

func (e *CategoryReferenceError) Error() string {
	return fmt.Sprintf("category with id:%s does not exist", e.CategoryID)
}

func (e *CategoryReferenceError) Unwrap() error {
	return ErrCategoryNotFound
}

// TransactionService records income and expenses. The owner's analytics
// cache is invalidated before a write returns; lifecycle observers run after
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	cache           AnalyticsCacheInterface
	notifier        TransactionNotifierInterface
	location        *time.Location
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	cache AnalyticsCacheInterface,
	notifier TransactionNotifierInterface,
	location *time.Location,
) TransactionServiceInterface {
	if location == nil {
		location = time.UTC
	}
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		cache:           cache,
		notifier:        notifier,
		location:        location,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	transaction := &models.Transaction{
		UserID: userID,
		Type:   models.TransactionType(req.Type),
		Amount: req.Amount,
		Note:   strings.TrimSpace(req.Note),
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := s.resolveCategory(userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = &category.ID
		transaction.Category = category
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.invalidateAnalytics(ctx, userID)
	s.notifier.NotifyCreated(ctx, transaction)
	return transaction, nil
}

// List returns the user's transactions newest first, optionally bounded by
// the same YYYY-MM-DD range the analytics endpoints accept and narrowed by
// type and category
func (s *TransactionService) List(userID uuid.UUID, query dto.TransactionListQuery) ([]models.Transaction, error) {
	dateRange, err := analytics.ParseDateRange(query.StartDate, query.EndDate, s.location)
	if err != nil {
		return nil, err
	}

	filters := models.TransactionFilters{
		UserID:    userID,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Type:      models.TransactionType(query.Type),
		Offset:    query.Offset,
		Limit:     query.Limit,
	}

	if filters.Type != "" && !filters.Type.IsValid() {
		return nil, models.ErrInvalidTransactionType
	}

	if query.CategoryID != "" {
		categoryID, err := uuid.Parse(query.CategoryID)
		if err != nil {
			return nil, &CategoryReferenceError{CategoryID: query.CategoryID}
		}
		filters.CategoryID = &categoryID
	}

	transactions, err := s.transactionRepo.FindByUser(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *TransactionService) Get(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	transaction, err := s.Get(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transactionID, userID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.invalidateAnalytics(ctx, userID)
	s.notifier.NotifyDeleted(ctx, transaction)
	return nil
}

func (s *TransactionService) invalidateAnalytics(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate analytics cache", "error", err, "user_id", userID)
	}
}

func (s *TransactionService) resolveCategory(userID uuid.UUID, rawID string) (*models.Category, error) {
	categoryID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, &CategoryReferenceError{CategoryID: rawID}
	}

	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, &CategoryReferenceError{CategoryID: rawID}
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}
