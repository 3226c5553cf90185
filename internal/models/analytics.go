package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryAnalytics is a per-category rollup of one analytics request.
// CategoryID and CategoryType are nil for the uncategorized entry
type CategoryAnalytics struct {
	CategoryID       *uuid.UUID      `json:"categoryId"`
	CategoryName     string          `json:"categoryName"`
	CategoryType     *CategoryType   `json:"categoryType"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int             `json:"transactionCount"`
	Percentage       decimal.Decimal `json:"percentage"`
}

type FinancialSummary struct {
	TotalIncome       decimal.Decimal     `json:"totalIncome"`
	TotalExpense      decimal.Decimal     `json:"totalExpense"`
	Balance           decimal.Decimal     `json:"balance"`
	IncomeCount       int                 `json:"incomeCount"`
	ExpenseCount      int                 `json:"expenseCount"`
	TotalTransactions int                 `json:"totalTransactions"`
	CategoryAnalytics []CategoryAnalytics `json:"categoryAnalytics"`
}
