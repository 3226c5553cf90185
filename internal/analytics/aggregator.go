// Package analytics turns a user's transactions into category rollups and a
// financial summary. It does no I/O and keeps no state between calls
package analytics

import (
	"sort"

	"cashflow/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedName is reported for transactions without a category
const UncategorizedName = "Uncategorized"

var hundred = decimal.NewFromInt(100)

// CategoryKind decides which totals a category group is reported against
type CategoryKind int

const (
	KindUncategorized CategoryKind = iota
	KindIncome
	KindExpense
)

func KindOf(category *models.Category) CategoryKind {
	if category == nil {
		return KindUncategorized
	}
	switch category.Type {
	case models.CategoryTypeIncome:
		return KindIncome
	case models.CategoryTypeExpense:
		return KindExpense
	default:
		return KindUncategorized
	}
}

type groupKey struct {
	categoryID    uuid.UUID
	uncategorized bool
}

type group struct {
	category     *models.Category
	income       decimal.Decimal
	expense      decimal.Decimal
	incomeCount  int
	expenseCount int
}

func (g *group) add(tx *models.Transaction) {
	switch {
	case tx.IsIncome():
		g.income = g.income.Add(tx.Amount)
		g.incomeCount++
	case tx.IsExpense():
		g.expense = g.expense.Add(tx.Amount)
		g.expenseCount++
	}
}

// report returns the amount, count and denominator the group is measured with
func (g *group) report(t totals) (decimal.Decimal, int, decimal.Decimal) {
	switch KindOf(g.category) {
	case KindIncome:
		return g.income, g.incomeCount, t.income
	case KindExpense:
		return g.expense, g.expenseCount, t.expense
	default:
		return g.income.Add(g.expense), g.incomeCount + g.expenseCount, t.income.Add(t.expense)
	}
}

type totals struct {
	income       decimal.Decimal
	expense      decimal.Decimal
	incomeCount  int
	expenseCount int
}

func sumTotals(txs []models.Transaction) totals {
	var t totals
	for i := range txs {
		switch {
		case txs[i].IsIncome():
			t.income = t.income.Add(txs[i].Amount)
			t.incomeCount++
		case txs[i].IsExpense():
			t.expense = t.expense.Add(txs[i].Amount)
			t.expenseCount++
		}
	}
	return t
}

// AggregateCategories groups txs by their preloaded Category and returns one
// entry per group with a positive reported amount, largest first. Typed
// categories only count transactions of their own type; the uncategorized
// group counts both and is measured against the combined total. Amounts and
// percentages are rounded half away from zero to 2 places. Groups with equal
// amounts keep the order in which they were first seen
func AggregateCategories(txs []models.Transaction) []models.CategoryAnalytics {
	return aggregate(txs, sumTotals(txs))
}

func aggregate(txs []models.Transaction, t totals) []models.CategoryAnalytics {
	groups := make(map[groupKey]*group)
	var order []groupKey

	for i := range txs {
		tx := &txs[i]

		key := groupKey{uncategorized: true}
		if tx.Category != nil {
			key = groupKey{categoryID: tx.Category.ID}
		}

		g, ok := groups[key]
		if !ok {
			g = &group{category: tx.Category}
			groups[key] = g
			order = append(order, key)
		}
		g.add(tx)
	}

	entries := make([]models.CategoryAnalytics, 0, len(order))
	for _, key := range order {
		g := groups[key]

		amount, count, denominator := g.report(t)
		if !amount.IsPositive() {
			continue
		}

		entries = append(entries, newEntry(g.category, amount, count, denominator))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalAmount.GreaterThan(entries[j].TotalAmount)
	})

	return entries
}

func newEntry(category *models.Category, amount decimal.Decimal, count int, denominator decimal.Decimal) models.CategoryAnalytics {
	entry := models.CategoryAnalytics{
		CategoryName:     UncategorizedName,
		TotalAmount:      amount.Round(models.AmountScale),
		TransactionCount: count,
		Percentage:       percentage(amount, denominator),
	}

	if category != nil {
		id := category.ID
		categoryType := category.Type
		entry.CategoryID = &id
		entry.CategoryName = category.Name
		entry.CategoryType = &categoryType
	}

	return entry
}

func percentage(amount, denominator decimal.Decimal) decimal.Decimal {
	if !denominator.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(hundred).DivRound(denominator, 2)
}
