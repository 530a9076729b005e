package derive

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

func expense(category, amount, date string) models.Expense {
	return models.Expense{Category: category, Description: category, Amount: amount, Date: date}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-06", MonthKey("2024-06-03"))
	assert.Equal(t, "2024-12", MonthKey("2024-12-31"))
	assert.Equal(t, "bad", MonthKey("bad"))
}

func TestTotalForMonth(t *testing.T) {
	expenses := []models.Expense{
		expense("feed", "45.00", "2024-06-03"),
		expense("veterinary", "60.00", "2024-06-10"),
		expense("feed", "20.00", "2024-05-28"),
	}

	total := TotalForMonth(expenses, "2024-06")
	assert.Equal(t, "105.00", total.StringFixed(2))

	assert.Equal(t, "20.00", TotalForMonth(expenses, "2024-05").StringFixed(2))
	assert.True(t, TotalForMonth(expenses, "2024-04").IsZero())
}

func TestTotalForMonth_UnparsableAmountCountsAsZero(t *testing.T) {
	expenses := []models.Expense{
		expense("feed", "45.00", "2024-06-03"),
		expense("feed", "not-a-number", "2024-06-04"),
		expense("feed", "", "2024-06-05"),
	}
	assert.Equal(t, "45.00", TotalForMonth(expenses, "2024-06").StringFixed(2))
}

func TestThreeMonthAverage(t *testing.T) {
	today := testDay("2024-06-15")

	t.Run("empty list is zero", func(t *testing.T) {
		assert.True(t, ThreeMonthAverage(nil, today).IsZero())
	})

	t.Run("single expense this month", func(t *testing.T) {
		expenses := []models.Expense{expense("feed", "90", "2024-06-02")}
		assert.Equal(t, "30.00", ThreeMonthAverage(expenses, today).StringFixed(2))
	})

	t.Run("spread across window", func(t *testing.T) {
		expenses := []models.Expense{
			expense("feed", "30.00", "2024-06-01"),
			expense("feed", "60.00", "2024-05-15"),
			expense("feed", "90.00", "2024-04-30"),
			expense("feed", "999.00", "2024-03-31"), // outside the window
		}
		assert.Equal(t, "60.00", ThreeMonthAverage(expenses, today).StringFixed(2))
	})

	t.Run("window crosses a year boundary", func(t *testing.T) {
		jan := testDay("2025-01-20")
		expenses := []models.Expense{
			expense("feed", "30.00", "2025-01-05"),
			expense("feed", "30.00", "2024-12-05"),
			expense("feed", "30.00", "2024-11-05"),
		}
		assert.Equal(t, "30.00", ThreeMonthAverage(expenses, jan).StringFixed(2))
	})
}

func TestGroupByCategory(t *testing.T) {
	expenses := []models.Expense{
		expense("feed", "45.00", "2024-06-03"),
		expense("veterinary", "60.00", "2024-06-10"),
		expense("feed", "15.50", "2024-06-12"),
		expense("other", "bogus", "2024-06-13"),
	}

	groups := GroupByCategory(expenses)
	require.Len(t, groups, 3)

	// Groups appear in first-appearance order.
	assert.Equal(t, "feed", groups[0].Category)
	assert.Equal(t, "veterinary", groups[1].Category)
	assert.Equal(t, "other", groups[2].Category)

	assert.Equal(t, "60.50", groups[0].Total.StringFixed(2))
	assert.Equal(t, "60.00", groups[1].Total.StringFixed(2))
	assert.True(t, groups[2].Total.IsZero())

	// Every input lands in exactly one group, order preserved within groups.
	var count int
	for _, g := range groups {
		count += len(g.Expenses)
		sum := decimal.Zero
		for _, e := range g.Expenses {
			assert.Equal(t, g.Category, e.Category)
			sum = sum.Add(Amount(e))
		}
		assert.True(t, sum.Equal(g.Total), "group %s sum", g.Category)
	}
	assert.Equal(t, len(expenses), count)

	assert.Equal(t, "45.00", groups[0].Expenses[0].Amount)
	assert.Equal(t, "15.50", groups[0].Expenses[1].Amount)
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestSummarizeExpenses(t *testing.T) {
	today := testDay("2024-06-15")
	expenses := []models.Expense{
		expense("feed", "45.00", "2024-06-03"),
		expense("veterinary", "60.00", "2024-06-10"),
		expense("feed", "30.00", "2024-05-20"),
	}

	summary := SummarizeExpenses(expenses, today)
	assert.Equal(t, "2024-06", summary.Month)
	assert.Equal(t, "105.00", summary.ThisMonthTotal)
	assert.Equal(t, "30.00", summary.LastMonthTotal)
	assert.Equal(t, "45.00", summary.ThreeMonthAverage)
}
