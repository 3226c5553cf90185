package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cashflow/internal/analytics"
	"cashflow/internal/models"
	"cashflow/internal/repositories"

	"github.com/google/uuid"
)

const (
	analyticsKindFinancial  = "financial"
	analyticsKindCategories = "categories"
)

// AnalyticsService orchestrates the aggregation core: validate the range,
// consult the cache, fetch from the record store, build the summary
type AnalyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cache           AnalyticsCacheInterface
	metrics         MetricsRecorderInterface
	location        *time.Location
}

func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	cache AnalyticsCacheInterface,
	metrics MetricsRecorderInterface,
	location *time.Location,
) AnalyticsServiceInterface {
	if location == nil {
		location = time.UTC
	}
	return &AnalyticsService{
		transactionRepo: transactionRepo,
		cache:           cache,
		metrics:         metrics,
		location:        location,
	}
}

// GetFinancialAnalytics returns totals, counts and the category breakdown.
// Date validation errors are returned unchanged and nothing is fetched
func (s *AnalyticsService) GetFinancialAnalytics(ctx context.Context, userID uuid.UUID, startDate, endDate string) (*models.FinancialSummary, error) {
	return s.summary(ctx, analyticsKindFinancial, userID, startDate, endDate)
}

// GetCategoryAnalytics returns only the category breakdown of the summary
func (s *AnalyticsService) GetCategoryAnalytics(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.CategoryAnalytics, error) {
	summary, err := s.summary(ctx, analyticsKindCategories, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return summary.CategoryAnalytics, nil
}

func (s *AnalyticsService) summary(ctx context.Context, kind string, userID uuid.UUID, startDate, endDate string) (*models.FinancialSummary, error) {
	dateRange, err := analytics.ParseDateRange(startDate, endDate, s.location)
	if err != nil {
		s.recordRequest(kind, "invalid")
		return nil, err
	}

	rangeKey := dateRange.Key()

	// the generation is read before fetching so a summary computed from
	// pre-write data lands under a generation that is already retired
	generation, err := s.cache.Generation(ctx, userID)
	cacheable := err == nil
	if err != nil {
		slog.Warn("Failed to read analytics cache generation", "error", err, "user_id", userID)
	}

	if cacheable {
		cached, ok, err := s.cache.GetSummary(ctx, userID, generation, rangeKey)
		if err != nil {
			slog.Warn("Failed to read analytics cache", "error", err, "user_id", userID, "range", rangeKey)
		}
		if ok {
			s.metrics.IncrementCounter(MetricAnalyticsCache, map[string]string{"result": "hit"})
			s.recordRequest(kind, "success")
			return cached, nil
		}
	}
	s.metrics.IncrementCounter(MetricAnalyticsCache, map[string]string{"result": "miss"})

	start := time.Now()

	transactions, err := s.transactionRepo.FindByUser(models.TransactionFilters{
		UserID:    userID,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
	})
	if err != nil {
		s.recordRequest(kind, "error")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary := analytics.BuildSummary(transactions)

	s.metrics.RecordProcessingTime(MetricAnalyticsDuration, time.Since(start))
	s.metrics.RecordGauge(MetricAnalyticsTransactions, float64(len(transactions)), nil)

	if cacheable {
		if err := s.cache.SetSummary(ctx, userID, generation, rangeKey, &summary); err != nil {
			slog.Warn("Failed to write analytics cache", "error", err, "user_id", userID, "range", rangeKey)
		}
	}

	s.recordRequest(kind, "success")
	return &summary, nil
}

func (s *AnalyticsService) recordRequest(kind, status string) {
	s.metrics.IncrementCounter(MetricAnalyticsRequest, map[string]string{"kind": kind, "status": status})
}
