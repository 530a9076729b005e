package derive

import (
	"time"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// Stats is the dashboard aggregate served by /api/stats.
type Stats struct {
	TotalRabbits    int    `json:"totalRabbits"`
	ActiveBreeders  int    `json:"activeBreeders"`
	LittersDue      int    `json:"littersDue"`
	MonthlyExpenses string `json:"monthlyExpenses"`
}

// ComputeStats derives the herd and financial headline numbers: active
// animals, active breeders, expecting litters, and the current month's spend.
func ComputeStats(rabbits []models.Rabbit, records []models.BreedingRecord, expenses []models.Expense, today time.Time) Stats {
	var total, breeders int
	for _, r := range rabbits {
		if r.Status != models.RabbitActive {
			continue
		}
		total++
		if r.IsBreeder {
			breeders++
		}
	}

	var due int
	for _, rec := range records {
		if rec.Status == models.BreedingExpecting {
			due++
		}
	}

	return Stats{
		TotalRabbits:    total,
		ActiveBreeders:  breeders,
		LittersDue:      due,
		MonthlyExpenses: TotalForMonth(expenses, monthKeyAt(today, 0)).StringFixed(2),
	}
}
