package handlers

import (
	"cashflow/internal/dto"
	"cashflow/internal/models"
)

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	response := dto.TransactionResponse{
		ID:        tx.ID.String(),
		Type:      string(tx.Type),
		Amount:    tx.Amount.InexactFloat64(),
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt,
	}

	if tx.Category != nil {
		category := toCategoryResponse(tx.Category)
		response.Category = &category
	}

	return response
}

func toCategoryAnalyticsResponses(entries []models.CategoryAnalytics) []dto.CategoryAnalyticsResponse {
	responses := make([]dto.CategoryAnalyticsResponse, 0, len(entries))
	for _, entry := range entries {
		item := dto.CategoryAnalyticsResponse{
			CategoryName:     entry.CategoryName,
			TotalAmount:      entry.TotalAmount.InexactFloat64(),
			TransactionCount: entry.TransactionCount,
			Percentage:       entry.Percentage.InexactFloat64(),
		}
		if entry.CategoryID != nil {
			id := entry.CategoryID.String()
			item.CategoryID = &id
		}
		if entry.CategoryType != nil {
			categoryType := string(*entry.CategoryType)
			item.CategoryType = &categoryType
		}
		responses = append(responses, item)
	}
	return responses
}

func toFinancialAnalyticsResponse(summary *models.FinancialSummary) dto.FinancialAnalyticsResponse {
	return dto.FinancialAnalyticsResponse{
		TotalIncome:       summary.TotalIncome.InexactFloat64(),
		TotalExpense:      summary.TotalExpense.InexactFloat64(),
		Balance:           summary.Balance.InexactFloat64(),
		IncomeCount:       summary.IncomeCount,
		ExpenseCount:      summary.ExpenseCount,
		TotalTransactions: summary.TotalTransactions,
		CategoryAnalytics: toCategoryAnalyticsResponses(summary.CategoryAnalytics),
	}
}
