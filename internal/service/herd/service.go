// Package herd glues the entity store to the derivation engine: it owns the
// record lifecycle and decorates raw rows with the derived fields the API
// serves. All date-relative logic lives in internal/derive; this service only
// picks the reference date and looks up references.
package herd

import (
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/derive"
	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/repository/memstore"
)

// RabbitView is a rabbit row plus its derived display fields.
type RabbitView struct {
	models.Rabbit
	Age             string `json:"age"`
	AgeMonths       int    `json:"ageMonths"`
	TooYoungToBreed bool   `json:"tooYoungToBreed"`
}

// BreedingView is a breeding record plus its timeline and parent names.
// Parent names are empty when the reference points at no stored rabbit; the
// client decides how to render the gap.
type BreedingView struct {
	models.BreedingRecord
	derive.Timeline
	MotherName string `json:"motherName"`
	FatherName string `json:"fatherName"`
}

// CategoryTotal summarizes one expense category.
type CategoryTotal struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Total    string `json:"total"`
}

// ExpenseOverview is the payload of the expense summary endpoint.
type ExpenseOverview struct {
	Summary    derive.ExpenseSummary `json:"summary"`
	ByCategory []CategoryTotal       `json:"byCategory"`
}

// Dashboard is the aggregate view behind the landing screen.
type Dashboard struct {
	Stats          derive.Stats      `json:"stats"`
	RecentActivity []derive.Activity `json:"recentActivity"`
	UpcomingEvents []derive.Event    `json:"upcomingEvents"`
}

// Service owns the herd records and their derived views.
type Service struct {
	store  *memstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a herd service over the given store.
func NewService(store *memstore.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// WithClock overrides the reference clock; used by tests and the scheduler.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListRabbits returns every rabbit with derived age fields.
func (s *Service) ListRabbits() []RabbitView {
	rabbits := s.store.Rabbits()
	today := s.now()

	out := make([]RabbitView, 0, len(rabbits))
	for _, r := range rabbits {
		out = append(out, s.rabbitView(r, today))
	}
	return out
}

// GetRabbit fetches one rabbit view; ok is false when the id is unknown.
func (s *Service) GetRabbit(id int) (RabbitView, bool) {
	r, ok := s.store.Rabbit(id)
	if !ok {
		return RabbitView{}, false
	}
	return s.rabbitView(r, s.now()), true
}

// CreateRabbit stores a new rabbit.
func (s *Service) CreateRabbit(in models.InsertRabbit) RabbitView {
	r := s.store.CreateRabbit(in)
	s.logger.Info("rabbit created", zap.Int("id", r.ID), zap.String("name", r.Name))
	return s.rabbitView(r, s.now())
}

// UpdateRabbit applies a partial update.
func (s *Service) UpdateRabbit(id int, patch models.RabbitPatch) (RabbitView, bool) {
	r, ok := s.store.UpdateRabbit(id, patch)
	if !ok {
		return RabbitView{}, false
	}
	return s.rabbitView(r, s.now()), true
}

// DeleteRabbit removes a rabbit without touching records that reference it.
func (s *Service) DeleteRabbit(id int) bool { return s.store.DeleteRabbit(id) }

func (s *Service) rabbitView(r models.Rabbit, today time.Time) RabbitView {
	months := derive.AgeInMonths(r.BirthDate, today)
	return RabbitView{
		Rabbit:          r,
		Age:             derive.FormatAge(months),
		AgeMonths:       months,
		TooYoungToBreed: derive.TooYoungToBreed(r.BirthDate, today),
	}
}

// ListBreedingRecords returns every record with its derived timeline.
func (s *Service) ListBreedingRecords() []BreedingView {
	records := s.store.BreedingRecords()
	today := s.now()

	out := make([]BreedingView, 0, len(records))
	for _, rec := range records {
		out = append(out, s.breedingView(rec, today))
	}
	return out
}

// CreateBreedingRecord stores a new record, defaulting the expected kindle
// date to matingDate + 31 days when the caller leaves it blank.
func (s *Service) CreateBreedingRecord(in models.InsertBreedingRecord) BreedingView {
	if in.ExpectedKindleDate == "" {
		in.ExpectedKindleDate = derive.DefaultExpectedKindleDate(in.MatingDate)
	}
	rec := s.store.CreateBreedingRecord(in)
	s.logger.Info("breeding record created",
		zap.Int("id", rec.ID),
		zap.Int("mother_id", rec.MotherID),
		zap.Int("father_id", rec.FatherID))
	return s.breedingView(rec, s.now())
}

// UpdateBreedingRecord applies a partial update.
func (s *Service) UpdateBreedingRecord(id int, patch models.BreedingRecordPatch) (BreedingView, bool) {
	rec, ok := s.store.UpdateBreedingRecord(id, patch)
	if !ok {
		return BreedingView{}, false
	}
	return s.breedingView(rec, s.now()), true
}

// DeleteBreedingRecord removes a record.
func (s *Service) DeleteBreedingRecord(id int) bool { return s.store.DeleteBreedingRecord(id) }

func (s *Service) breedingView(rec models.BreedingRecord, today time.Time) BreedingView {
	view := BreedingView{
		BreedingRecord: rec,
		Timeline:       derive.BreedingTimeline(rec, today),
	}
	if mother, ok := s.store.Rabbit(rec.MotherID); ok {
		view.MotherName = mother.Name
	}
	if father, ok := s.store.Rabbit(rec.FatherID); ok {
		view.FatherName = father.Name
	}
	return view
}

// ListOffspring returns every kit, or one record's litter when
// breedingRecordID is positive.
func (s *Service) ListOffspring(breedingRecordID int) []models.Offspring {
	if breedingRecordID > 0 {
		return s.store.OffspringByBreedingRecord(breedingRecordID)
	}
	return s.store.Offspring()
}

// CreateOffspring stores a new kit.
func (s *Service) CreateOffspring(in models.InsertOffspring) models.Offspring {
	return s.store.CreateOffspring(in)
}

// UpdateOffspring applies a partial update.
func (s *Service) UpdateOffspring(id int, patch models.OffspringPatch) (models.Offspring, bool) {
	return s.store.UpdateOffspring(id, patch)
}

// DeleteOffspring removes a kit.
func (s *Service) DeleteOffspring(id int) bool { return s.store.DeleteOffspring(id) }

// ListExpenses returns every expense, or the inclusive date range when both
// bounds are given.
func (s *Service) ListExpenses(startDate, endDate string) []models.Expense {
	if startDate != "" && endDate != "" {
		return s.store.ExpensesByDateRange(startDate, endDate)
	}
	return s.store.Expenses()
}

// CreateExpense stores a new expense.
func (s *Service) CreateExpense(in models.InsertExpense) models.Expense {
	return s.store.CreateExpense(in)
}

// UpdateExpense applies a partial update.
func (s *Service) UpdateExpense(id int, patch models.ExpensePatch) (models.Expense, bool) {
	return s.store.UpdateExpense(id, patch)
}

// DeleteExpense removes an expense.
func (s *Service) DeleteExpense(id int) bool { return s.store.DeleteExpense(id) }

// ExpenseOverview derives the monthly summary and per-category totals.
func (s *Service) ExpenseOverview() ExpenseOverview {
	expenses := s.store.Expenses()

	groups := derive.GroupByCategory(expenses)
	byCategory := make([]CategoryTotal, 0, len(groups))
	for _, g := range groups {
		byCategory = append(byCategory, CategoryTotal{
			Category: g.Category,
			Count:    len(g.Expenses),
			Total:    g.Total.StringFixed(2),
		})
	}

	return ExpenseOverview{
		Summary:    derive.SummarizeExpenses(expenses, s.now()),
		ByCategory: byCategory,
	}
}

// ListButcherRecords returns every butcher record.
func (s *Service) ListButcherRecords() []models.ButcherRecord { return s.store.ButcherRecords() }

// CreateButcherRecord stores a new butcher record.
func (s *Service) CreateButcherRecord(in models.InsertButcherRecord) models.ButcherRecord {
	return s.store.CreateButcherRecord(in)
}

// UpdateButcherRecord applies a partial update.
func (s *Service) UpdateButcherRecord(id int, patch models.ButcherRecordPatch) (models.ButcherRecord, bool) {
	return s.store.UpdateButcherRecord(id, patch)
}

// DeleteButcherRecord removes a butcher record.
func (s *Service) DeleteButcherRecord(id int) bool { return s.store.DeleteButcherRecord(id) }

// Stats derives the dashboard headline numbers.
func (s *Service) Stats() derive.Stats {
	return derive.ComputeStats(s.store.Rabbits(), s.store.BreedingRecords(), s.store.Expenses(), s.now())
}

// Notifications rescans the current collections for attention items.
func (s *Service) Notifications() []derive.Notification {
	return derive.Notifications(s.store.BreedingRecords(), s.store.Rabbits(), s.now())
}

// Dashboard derives the landing-screen aggregate.
func (s *Service) Dashboard() Dashboard {
	today := s.now()
	rabbits := s.store.Rabbits()
	records := s.store.BreedingRecords()
	expenses := s.store.Expenses()

	return Dashboard{
		Stats:          derive.ComputeStats(rabbits, records, expenses, today),
		RecentActivity: derive.RecentActivity(rabbits, records, expenses),
		UpcomingEvents: derive.UpcomingEvents(records, today),
	}
}

// Snapshot builds the daily aggregate archived by the scheduler.
func (s *Service) Snapshot() models.HerdSnapshot {
	today := s.now()
	stats := s.Stats()

	return models.HerdSnapshot{
		Date:            today.Format("2006-01-02"),
		TotalRabbits:    stats.TotalRabbits,
		ActiveBreeders:  stats.ActiveBreeders,
		LittersDue:      stats.LittersDue,
		MonthlyExpenses: stats.MonthlyExpenses,
		Notifications:   len(s.Notifications()),
		CreatedAt:       today.UTC(),
	}
}
