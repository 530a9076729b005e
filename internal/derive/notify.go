package derive

import (
	"fmt"
	"time"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// Notification kinds.
const (
	NotificationKindle = "kindle"
	NotificationHealth = "health"
)

const (
	kindleNoticeWindowDays = 7
	healthCheckOverdueDays = 90
)

// Notification is one attention item. The list is recomputed on every scan;
// nothing is persisted or deduplicated across calls.
type Notification struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	DueDate string `json:"dueDate"`
}

// Notifications scans the current collections and returns everything needing
// attention: expecting litters due within the next week, then rabbits whose
// last health check is more than 90 days old.
func Notifications(records []models.BreedingRecord, rabbits []models.Rabbit, today time.Time) []Notification {
	out := make([]Notification, 0)

	for _, rec := range records {
		if rec.Status != models.BreedingExpecting {
			continue
		}
		days := DaysUntilKindle(rec, today)
		if days < 0 || days > kindleNoticeWindowDays {
			continue
		}
		out = append(out, Notification{
			ID:      fmt.Sprintf("kindle-%d", rec.ID),
			Kind:    NotificationKindle,
			Title:   "Kindle Due",
			Message: kindleMessage(rec.ID, days),
			DueDate: rec.ExpectedKindleDate,
		})
	}

	for _, r := range rabbits {
		if r.LastHealthCheck == nil {
			continue
		}
		since := daysBetween(parseDay(*r.LastHealthCheck), today)
		if since <= healthCheckOverdueDays {
			continue
		}
		out = append(out, Notification{
			ID:      fmt.Sprintf("health-%d", r.ID),
			Kind:    NotificationHealth,
			Title:   "Health Check Overdue",
			Message: fmt.Sprintf("%s was last checked %d days ago", r.Name, since),
			DueDate: formatDay(parseDay(*r.LastHealthCheck).AddDate(0, 0, healthCheckOverdueDays)),
		})
	}

	return out
}

func kindleMessage(recordID, days int) string {
	switch days {
	case 0:
		return fmt.Sprintf("Record #%d is due today", recordID)
	case 1:
		return fmt.Sprintf("Record #%d is due tomorrow", recordID)
	default:
		return fmt.Sprintf("Record #%d is due in %d days", recordID, days)
	}
}
