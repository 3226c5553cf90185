package analytics

import "cashflow/internal/models"

// BuildSummary computes overall totals for txs together with their category
// breakdown. Transactions of unknown type are ignored
func BuildSummary(txs []models.Transaction) models.FinancialSummary {
	t := sumTotals(txs)

	return models.FinancialSummary{
		TotalIncome:       t.income.Round(models.AmountScale),
		TotalExpense:      t.expense.Round(models.AmountScale),
		Balance:           t.income.Sub(t.expense).Round(models.AmountScale),
		IncomeCount:       t.incomeCount,
		ExpenseCount:      t.expenseCount,
		TotalTransactions: t.incomeCount + t.expenseCount,
		CategoryAnalytics: aggregate(txs, t),
	}
}
