package derive

import (
	"fmt"
	"time"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// Rabbit gestation runs about 31 days from mating.
const gestationDays = 31

const (
	recordBirthWindowDays = 1
	nestBoxWindowDays     = 7
)

// Urgency classifies how pressing a breeding record is.
type Urgency string

const (
	UrgencyDue       Urgency = "due"
	UrgencySoon      Urgency = "soon"
	UrgencyScheduled Urgency = "scheduled"
	UrgencyNone      Urgency = "none"
)

// Badge is the display classification for one breeding record.
type Badge struct {
	Label   string  `json:"label"`
	Urgency Urgency `json:"urgency"`
}

// Timeline bundles every derived field the breeding views need.
type Timeline struct {
	DaysSinceMating int    `json:"daysSinceMating"`
	DaysUntilKindle int    `json:"daysUntilKindle"`
	Badge           Badge  `json:"badge"`
	CanRecordBirth  bool   `json:"canRecordBirth"`
	NeedsNestBox    bool   `json:"needsNestBox"`
	MatingDay       string `json:"matingDay,omitempty"`
}

// DaysSinceMating returns whole days elapsed since the mating date. A future
// mating date yields a negative count, matching the stored-as-entered data.
func DaysSinceMating(rec models.BreedingRecord, today time.Time) int {
	return daysBetween(parseDay(rec.MatingDate), today)
}

// DaysUntilKindle returns whole days until the expected kindle date, negative
// once the record is overdue.
func DaysUntilKindle(rec models.BreedingRecord, today time.Time) int {
	return daysBetween(today, parseDay(rec.ExpectedKindleDate))
}

// KindleBadge classifies an expecting record by how close the kindle date is;
// settled statuses get a fixed badge regardless of dates.
func KindleBadge(rec models.BreedingRecord, today time.Time) Badge {
	if rec.Status == models.BreedingExpecting {
		days := DaysUntilKindle(rec, today)
		switch {
		case days <= 1:
			if days == 0 {
				return Badge{Label: "Due Today", Urgency: UrgencyDue}
			}
			return Badge{Label: "Due Tomorrow", Urgency: UrgencyDue}
		case days <= 3:
			return Badge{Label: "Due Soon", Urgency: UrgencySoon}
		default:
			return Badge{Label: fmt.Sprintf("%d days left", days), Urgency: UrgencyScheduled}
		}
	}

	switch rec.Status {
	case models.BreedingKindled:
		return Badge{Label: "Kindled", Urgency: UrgencyNone}
	case models.BreedingWeaned:
		return Badge{Label: "Weaned", Urgency: UrgencyNone}
	case models.BreedingFailed:
		return Badge{Label: "Failed", Urgency: UrgencyNone}
	default:
		return Badge{Label: rec.Status, Urgency: UrgencyNone}
	}
}

// DefaultExpectedKindleDate returns matingDate + 31 days, the form pre-fill
// applied when a record is created without an explicit expected date.
func DefaultExpectedKindleDate(matingDate string) string {
	return formatDay(parseDay(matingDate).AddDate(0, 0, gestationDays))
}

// CanRecordBirth reports whether the record-birth quick action is offered.
func CanRecordBirth(rec models.BreedingRecord, today time.Time) bool {
	return rec.Status == models.BreedingExpecting && DaysUntilKindle(rec, today) <= recordBirthWindowDays
}

// NeedsNestBox reports whether the add-nest-box quick action is offered.
func NeedsNestBox(rec models.BreedingRecord, today time.Time) bool {
	return rec.Status == models.BreedingExpecting &&
		rec.NestBoxDate == nil &&
		DaysUntilKindle(rec, today) <= nestBoxWindowDays
}

// BreedingTimeline derives the full view for one record. MatingDay is only
// populated through day 31 of the cycle.
func BreedingTimeline(rec models.BreedingRecord, today time.Time) Timeline {
	tl := Timeline{
		DaysSinceMating: DaysSinceMating(rec, today),
		DaysUntilKindle: DaysUntilKindle(rec, today),
		Badge:           KindleBadge(rec, today),
		CanRecordBirth:  CanRecordBirth(rec, today),
		NeedsNestBox:    NeedsNestBox(rec, today),
	}
	if tl.DaysSinceMating <= gestationDays {
		tl.MatingDay = fmt.Sprintf("Day %d", tl.DaysSinceMating)
	}
	return tl
}
