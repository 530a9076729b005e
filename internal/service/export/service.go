// Package export flattens the in-memory collections into a Google Sheet,
// giving the otherwise non-persistent records an off-process backup.
package export

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/repository/sheets"
)

const (
	rabbitsRange   = "Rabbits!A:O"
	breedingRange  = "Breeding!A:L"
	offspringRange = "Offspring!A:J"
	expensesRange  = "Expenses!A:I"
	butcherRange   = "Butchering!A:I"

	timestampLayout = "2006-01-02 15:04:05"
)

// HerdSource supplies the current collections to export.
type HerdSource interface {
	Rabbits() []models.Rabbit
	BreedingRecords() []models.BreedingRecord
	Offspring() []models.Offspring
	Expenses() []models.Expense
	ButcherRecords() []models.ButcherRecord
}

// Service writes herd data to the configured spreadsheet.
type Service struct {
	source HerdSource
	repo   sheets.Repository
	logger *zap.Logger
}

// NewService wires an export service instance.
func NewService(source HerdSource, repo sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, repo: repo, logger: logger}
}

// ExportAll replaces the spreadsheet contents with the current collections.
// Each tab is cleared and rewritten with a header row plus one row per record.
func (s *Service) ExportAll(ctx context.Context) error {
	tabs := []struct {
		sheetRange string
		rows       [][]interface{}
	}{
		{rabbitsRange, s.rabbitRows()},
		{breedingRange, s.breedingRows()},
		{offspringRange, s.offspringRows()},
		{expensesRange, s.expenseRows()},
		{butcherRange, s.butcherRows()},
	}

	for _, tab := range tabs {
		if err := s.repo.ClearRange(ctx, tab.sheetRange); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := s.repo.AppendRows(ctx, tab.sheetRange, tab.rows); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	s.logger.Info("herd export completed",
		zap.Int("rabbits", len(tabs[0].rows)-1),
		zap.Int("breeding_records", len(tabs[1].rows)-1),
		zap.Int("offspring", len(tabs[2].rows)-1),
		zap.Int("expenses", len(tabs[3].rows)-1),
		zap.Int("butcher_records", len(tabs[4].rows)-1))
	return nil
}

func (s *Service) rabbitRows() [][]interface{} {
	rows := [][]interface{}{{
		"ID", "Name", "Breed", "Gender", "Birth Date", "Weight", "Color", "Status",
		"Breeder", "Mother ID", "Father ID", "Photo URL", "Last Health Check", "Notes", "Created At",
	}}
	for _, r := range s.source.Rabbits() {
		rows = append(rows, []interface{}{
			r.ID, r.Name, r.Breed, r.Gender, r.BirthDate, optString(r.Weight), optString(r.Color),
			r.Status, r.IsBreeder, optInt(r.MotherID), optInt(r.FatherID),
			optString(r.PhotoURL), optString(r.LastHealthCheck), optString(r.Notes), r.CreatedAt.Format(timestampLayout),
		})
	}
	return rows
}

func (s *Service) breedingRows() [][]interface{} {
	rows := [][]interface{}{{
		"ID", "Mother ID", "Father ID", "Mating Date", "Expected Kindle", "Actual Kindle",
		"Nest Box", "Litter Size", "Kits Alive", "Status", "Notes", "Created At",
	}}
	for _, rec := range s.source.BreedingRecords() {
		rows = append(rows, []interface{}{
			rec.ID, rec.MotherID, rec.FatherID, rec.MatingDate, rec.ExpectedKindleDate,
			optString(rec.ActualKindleDate), optString(rec.NestBoxDate),
			optInt(rec.LitterSize), optInt(rec.KitsAlive), rec.Status,
			optString(rec.Notes), rec.CreatedAt.Format(timestampLayout),
		})
	}
	return rows
}

func (s *Service) offspringRows() [][]interface{} {
	rows := [][]interface{}{{
		"ID", "Breeding Record ID", "Gender", "Weight", "Color", "Status",
		"Sale Price", "Sale Date", "Notes", "Created At",
	}}
	for _, o := range s.source.Offspring() {
		rows = append(rows, []interface{}{
			o.ID, o.BreedingRecordID, optString(o.Gender), optString(o.Weight), optString(o.Color),
			o.Status, optString(o.SalePrice), optString(o.SaleDate),
			optString(o.Notes), o.CreatedAt.Format(timestampLayout),
		})
	}
	return rows
}

func (s *Service) expenseRows() [][]interface{} {
	rows := [][]interface{}{{
		"ID", "Category", "Subcategory", "Description", "Amount", "Date", "Vendor", "Notes", "Created At",
	}}
	for _, e := range s.source.Expenses() {
		rows = append(rows, []interface{}{
			e.ID, e.Category, optString(e.Subcategory), e.Description, e.Amount, e.Date,
			optString(e.Vendor), optString(e.Notes), e.CreatedAt.Format(timestampLayout),
		})
	}
	return rows
}

func (s *Service) butcherRows() [][]interface{} {
	rows := [][]interface{}{{
		"ID", "Rabbit ID", "Offspring ID", "Butcher Date", "Live Weight", "Dressed Weight",
		"Total Value", "Processing Notes", "Created At",
	}}
	for _, b := range s.source.ButcherRecords() {
		rows = append(rows, []interface{}{
			b.ID, optInt(b.RabbitID), optInt(b.OffspringID), b.ButcherDate,
			optString(b.LiveWeight), optString(b.DressedWeight), optString(b.TotalValue),
			optString(b.ProcessingNotes), b.CreatedAt.Format(timestampLayout),
		})
	}
	return rows
}

func optString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
