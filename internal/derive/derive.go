// Package derive computes date-relative statuses, aggregates and notification
// lists from entity snapshots. Every function is pure: collections and the
// reference date come in as arguments, derived values come out, nothing is
// stored or mutated. Both the HTTP handlers and the scheduler consume this
// package; it depends only on the domain models.
package derive

import "time"

const dateLayout = "2006-01-02"

// parseDay reads an ISO date string. Required date fields are validated at the
// API boundary, so a failed parse maps to the zero time rather than an error.
func parseDay(value string) time.Time {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference to - from. Negative when "to"
// precedes "from".
func daysBetween(from, to time.Time) int {
	return int(atMidnight(to).Sub(atMidnight(from)).Hours() / 24)
}

func formatDay(t time.Time) string {
	return t.Format(dateLayout)
}
