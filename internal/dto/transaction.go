package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest contains the data for a new transaction.
// Amount accepts either a JSON number or a numeric string
type CreateTransactionRequest struct {
	Type       string          `json:"type" validate:"required,transaction_type"`
	Amount     decimal.Decimal `json:"amount" validate:"positive_amount"`
	CategoryID *string         `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	Note       string          `json:"note,omitempty" validate:"max=500"`
}

// DateRangeQuery holds the optional analytics date bounds
type DateRangeQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// TransactionListQuery holds the optional filters and paging of the
// transaction listing. Limit 0 returns every match
type TransactionListQuery struct {
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	Type       string `query:"type" validate:"omitempty,transaction_type"`
	CategoryID string `query:"categoryId" validate:"omitempty,uuid"`
	Limit      int    `query:"limit" validate:"min=0,max=500"`
	Offset     int    `query:"offset" validate:"min=0"`
}

// TransactionResponse represents a single transaction
type TransactionResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Amount    float64           `json:"amount"`
	Note      string            `json:"note"`
	Category  *CategoryResponse `json:"category"`
	CreatedAt time.Time         `json:"createdAt"`
}
