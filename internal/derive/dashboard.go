package derive

import (
	"fmt"
	"time"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// Activity is one recent-activity feed entry on the dashboard.
type Activity struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Time     string `json:"time"`
}

// Event is one upcoming-events entry on the dashboard.
type Event struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Time     string `json:"time"`
	Urgent   bool   `json:"urgent"`
}

// RecentActivity builds the dashboard feed: the latest two rabbits, latest two
// breeding records and latest expense, trimmed to the last three entries.
func RecentActivity(rabbits []models.Rabbit, records []models.BreedingRecord, expenses []models.Expense) []Activity {
	items := make([]Activity, 0, 5)

	for _, r := range lastN(rabbits, 2) {
		items = append(items, Activity{
			Type:     "rabbit",
			Title:    "New rabbit added",
			Subtitle: fmt.Sprintf("%s - %s", r.Name, r.Breed),
			Time:     r.CreatedAt.Format("Jan 2, 2006"),
		})
	}
	for _, rec := range lastN(records, 2) {
		items = append(items, Activity{
			Type:     "breeding",
			Title:    "Breeding recorded",
			Subtitle: fmt.Sprintf("Record #%d", rec.ID),
			Time:     rec.CreatedAt.Format("Jan 2, 2006"),
		})
	}
	for _, e := range lastN(expenses, 1) {
		items = append(items, Activity{
			Type:     "expense",
			Title:    "Expense added",
			Subtitle: fmt.Sprintf("%s - $%s", e.Description, e.Amount),
			Time:     e.CreatedAt.Format("Jan 2, 2006"),
		})
	}

	return lastN(items, 3)
}

// UpcomingEvents lists the first two expecting litters with their due labels.
// A record due today or sooner is flagged urgent.
func UpcomingEvents(records []models.BreedingRecord, today time.Time) []Event {
	events := make([]Event, 0, 2)
	for _, rec := range records {
		if rec.Status != models.BreedingExpecting {
			continue
		}
		days := DaysUntilKindle(rec, today)
		label := fmt.Sprintf("In %d days", days)
		if days <= 1 {
			label = "Tomorrow"
		}
		events = append(events, Event{
			Title:    "Kindle Due",
			Subtitle: fmt.Sprintf("Record #%d", rec.ID),
			Time:     label,
			Urgent:   days <= 1,
		})
		if len(events) == 2 {
			break
		}
	}
	return events
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
