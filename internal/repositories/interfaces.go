package repositories

import (
	"cashflow/internal/models"

	"github.com/google/uuid"
)

type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface scopes every lookup to the owning user
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Category, error)
	ListByUser(userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id, userID uuid.UUID) error
}

// TransactionRepositoryInterface is the record store behind transaction
// listing and analytics. Returned transactions have Category preloaded
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	FindByUser(filters models.TransactionFilters) ([]models.Transaction, error)
	Delete(id, userID uuid.UUID) error
}

type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}
