package services

import (
	"context"
	"time"

	"cashflow/internal/dto"
	"cashflow/internal/events"
	"cashflow/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*models.User, *dto.TokenResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*models.User, *dto.TokenResponse, error)
	SignOut(ctx context.Context, accessToken string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// UserServiceInterface covers the current user's own account
type UserServiceInterface interface {
	GetMe(userID uuid.UUID) (*models.User, error)
	DeleteMe(ctx context.Context, userID uuid.UUID) error
}

// CategoryServiceInterface manages the categories a user tags transactions with
type CategoryServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	List(userID uuid.UUID, categoryType string) ([]models.Category, error)
	Get(userID, categoryID uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

// TransactionServiceInterface records and lists a user's income and expenses
type TransactionServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	List(userID uuid.UUID, query dto.TransactionListQuery) ([]models.Transaction, error)
	Get(userID, transactionID uuid.UUID) (*models.Transaction, error)
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error
}

// AnalyticsServiceInterface validates a date range, fetches the user's
// transactions and aggregates them
type AnalyticsServiceInterface interface {
	GetFinancialAnalytics(ctx context.Context, userID uuid.UUID, startDate, endDate string) (*models.FinancialSummary, error)
	GetCategoryAnalytics(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.CategoryAnalytics, error)
}

// AnalyticsCacheInterface stores computed summaries per user, generation and
// date range. InvalidateUser advances the user's generation, so a summary
// computed under an older generation is never served again
type AnalyticsCacheInterface interface {
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	GetSummary(ctx context.Context, userID uuid.UUID, generation int64, rangeKey string) (*models.FinancialSummary, bool, error)
	SetSummary(ctx context.Context, userID uuid.UUID, generation int64, rangeKey string, summary *models.FinancialSummary) error
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}

// EventPublisherInterface delivers transaction lifecycle events to the broker
type EventPublisherInterface interface {
	Publish(ctx context.Context, event events.TransactionEvent) error
}

// TransactionObserverInterface reacts to transaction lifecycle changes
type TransactionObserverInterface interface {
	Name() string
	OnTransactionCreated(ctx context.Context, tx *models.Transaction) error
	OnTransactionDeleted(ctx context.Context, tx *models.Transaction) error
}

// TransactionNotifierInterface fans lifecycle events out to observers
type TransactionNotifierInterface interface {
	NotifyCreated(ctx context.Context, tx *models.Transaction)
	NotifyDeleted(ctx context.Context, tx *models.Transaction)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogSignUp(ctx context.Context, userID uuid.UUID, username string)
	LogSignIn(ctx context.Context, userID uuid.UUID, username string)
	LogSignInFailed(ctx context.Context, username, reason string)
	LogSignOut(ctx context.Context, userID uuid.UUID, jti string)
	LogUserDeleted(ctx context.Context, userID uuid.UUID)
	LogCategoryChange(ctx context.Context, userID, categoryID uuid.UUID, action string)
	LogTransactionEvent(ctx context.Context, event string, tx *models.Transaction)
}
