package derive

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// CategoryGroup is one category's expenses in insertion order plus their sum.
type CategoryGroup struct {
	Category string           `json:"category"`
	Expenses []models.Expense `json:"expenses"`
	Total    decimal.Decimal  `json:"total"`
}

// ExpenseSummary is the month box shown at the top of the expenses screen.
type ExpenseSummary struct {
	Month             string `json:"month"`
	ThisMonthTotal    string `json:"thisMonthTotal"`
	LastMonthTotal    string `json:"lastMonthTotal"`
	ThreeMonthAverage string `json:"threeMonthAverage"`
}

// Amount parses an expense amount, treating anything unparsable as zero.
func Amount(e models.Expense) decimal.Decimal {
	d, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// MonthKey returns the "YYYY-MM" prefix of an ISO date string. Matching is
// lexical against the stored string, not a parsed-calendar comparison.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// monthKeyAt computes the key for the calendar month offset months from today.
// Anchoring at the first of the month keeps month subtraction exact.
func monthKeyAt(today time.Time, offset int) string {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, offset, 0).Format("2006-01")
}

// TotalForMonth sums every expense whose date starts with monthKey.
func TotalForMonth(expenses []models.Expense, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if MonthKey(e.Date) == monthKey {
			total = total.Add(Amount(e))
		}
	}
	return total
}

// ThreeMonthAverage is the arithmetic mean of the current and two preceding
// calendar months' totals. Always divides by three; months with no expenses
// contribute zero, and an empty list yields zero.
func ThreeMonthAverage(expenses []models.Expense, today time.Time) decimal.Decimal {
	total := decimal.Zero
	for offset := 0; offset > -3; offset-- {
		total = total.Add(TotalForMonth(expenses, monthKeyAt(today, offset)))
	}
	return total.Div(decimal.NewFromInt(3))
}

// GroupByCategory partitions expenses by category, preserving insertion order
// within each group and ordering groups by first appearance.
func GroupByCategory(expenses []models.Expense) []CategoryGroup {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryGroup{Category: e.Category, Total: decimal.Zero})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
		groups[i].Total = groups[i].Total.Add(Amount(e))
	}

	return groups
}

// SummarizeExpenses derives the monthly summary box for the expenses screen.
func SummarizeExpenses(expenses []models.Expense, today time.Time) ExpenseSummary {
	return ExpenseSummary{
		Month:             monthKeyAt(today, 0),
		ThisMonthTotal:    TotalForMonth(expenses, monthKeyAt(today, 0)).StringFixed(2),
		LastMonthTotal:    TotalForMonth(expenses, monthKeyAt(today, -1)).StringFixed(2),
		ThreeMonthAverage: ThreeMonthAverage(expenses, today).StringFixed(2),
	}
}
