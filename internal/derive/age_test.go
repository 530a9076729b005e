package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeInMonths_IgnoresDayOfMonth(t *testing.T) {
	// Born late in the month, a rabbit still gains the month on the 1st.
	assert.Equal(t, 1, AgeInMonths("2024-05-28", testDay("2024-06-01")))
	assert.Equal(t, 1, AgeInMonths("2024-05-28", testDay("2024-06-30")))
	assert.Equal(t, 0, AgeInMonths("2024-05-01", testDay("2024-05-31")))
}

func TestAgeInMonths_YearRollover(t *testing.T) {
	assert.Equal(t, 12, AgeInMonths("2023-06-15", testDay("2024-06-01")))
	assert.Equal(t, 7, AgeInMonths("2023-11-20", testDay("2024-06-05")))
}

func TestAgeInMonths_MonotonicAsTodayAdvances(t *testing.T) {
	birth := "2023-03-10"
	days := []string{"2023-03-10", "2023-04-01", "2023-12-31", "2024-01-01", "2024-06-15"}

	prev := -1
	for _, d := range days {
		months := AgeInMonths(birth, testDay(d))
		assert.GreaterOrEqual(t, months, prev, "age must never decrease (at %s)", d)
		prev = months
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0 months"},
		{5, "5 months"},
		{11, "11 months"},
		{12, "1 years"},
		{14, "1y 2m"},
		{24, "2 years"},
		{30, "2y 6m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAge(tt.months))
	}
}

func TestTooYoungToBreed_ThresholdAtSixMonths(t *testing.T) {
	today := testDay("2024-06-15")

	// 0..5 months young, 6+ eligible.
	for offset := 0; offset <= 5; offset++ {
		birth := today.AddDate(0, -offset, 0).Format("2006-01-02")
		assert.True(t, TooYoungToBreed(birth, today), "%d months", offset)
	}
	for _, offset := range []int{6, 7, 8, 12, 36} {
		birth := today.AddDate(0, -offset, 0).Format("2006-01-02")
		assert.False(t, TooYoungToBreed(birth, today), "%d months", offset)
	}
}

func TestTooYoungToBreed_EightMonthDoe(t *testing.T) {
	today := testDay("2024-06-15")
	birth := today.AddDate(0, -8, 0).Format("2006-01-02")
	assert.False(t, TooYoungToBreed(birth, today))
}
