package dto

// CategoryAnalyticsResponse is one bucket of the category breakdown
type CategoryAnalyticsResponse struct {
	CategoryID       *string `json:"categoryId"`
	CategoryName     string  `json:"categoryName"`
	CategoryType     *string `json:"categoryType"`
	TotalAmount      float64 `json:"totalAmount"`
	TransactionCount int     `json:"transactionCount"`
	Percentage       float64 `json:"percentage"`
}

// FinancialAnalyticsResponse is the financial summary over a date range
type FinancialAnalyticsResponse struct {
	TotalIncome       float64                     `json:"totalIncome"`
	TotalExpense      float64                     `json:"totalExpense"`
	Balance           float64                     `json:"balance"`
	IncomeCount       int                         `json:"incomeCount"`
	ExpenseCount      int                         `json:"expenseCount"`
	TotalTransactions int                         `json:"totalTransactions"`
	CategoryAnalytics []CategoryAnalyticsResponse `json:"categoryAnalytics"`
}
