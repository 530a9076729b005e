package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

func insertRabbit(name string) models.InsertRabbit {
	return models.InsertRabbit{
		Name:      name,
		Breed:     "Rex",
		Gender:    "female",
		BirthDate: "2023-10-01",
	}
}

func TestCreateRabbit_AssignsMonotonicIDs(t *testing.T) {
	s := New()

	a := s.CreateRabbit(insertRabbit("Clover"))
	b := s.CreateRabbit(insertRabbit("Hazel"))

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, models.RabbitActive, a.Status, "status defaults to active")
	assert.False(t, a.CreatedAt.IsZero())
}

func TestCreateRabbit_IDsNeverReused(t *testing.T) {
	s := New()

	s.CreateRabbit(insertRabbit("Clover"))
	second := s.CreateRabbit(insertRabbit("Hazel"))
	require.True(t, s.DeleteRabbit(second.ID))

	third := s.CreateRabbit(insertRabbit("Thumper"))
	assert.Equal(t, 3, third.ID)
}

func TestRabbit_NotFound(t *testing.T) {
	s := New()
	_, ok := s.Rabbit(99)
	assert.False(t, ok)
}

func TestUpdateRabbit_MergesOnlyProvidedFields(t *testing.T) {
	s := New()
	created := s.CreateRabbit(insertRabbit("Clover"))

	name := "Daisy"
	weight := "4.20"
	updated, ok := s.UpdateRabbit(created.ID, models.RabbitPatch{Name: &name, Weight: &weight})

	require.True(t, ok)
	assert.Equal(t, "Daisy", updated.Name)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, "4.20", *updated.Weight)
	assert.Equal(t, "Rex", updated.Breed, "untouched field survives")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateRabbit_UnknownID(t *testing.T) {
	s := New()
	name := "Daisy"
	_, ok := s.UpdateRabbit(42, models.RabbitPatch{Name: &name})
	assert.False(t, ok)
}

func TestDeleteRabbit_DoesNotCascade(t *testing.T) {
	s := New()
	mother := s.CreateRabbit(insertRabbit("Clover"))
	rec := s.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID:           mother.ID,
		FatherID:           99, // dangling reference is allowed
		MatingDate:         "2024-06-01",
		ExpectedKindleDate: "2024-07-02",
	})

	require.True(t, s.DeleteRabbit(mother.ID))
	assert.False(t, s.DeleteRabbit(mother.ID), "second delete reports not found")

	kept, ok := s.BreedingRecord(rec.ID)
	require.True(t, ok, "breeding record survives its mother's deletion")
	assert.Equal(t, mother.ID, kept.MotherID)
}

func TestCreateBreedingRecord_DefaultsStatus(t *testing.T) {
	s := New()
	rec := s.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID:           1,
		FatherID:           2,
		MatingDate:         "2024-06-01",
		ExpectedKindleDate: "2024-07-02",
	})
	assert.Equal(t, models.BreedingExpecting, rec.Status)
}

func TestOffspringByBreedingRecord(t *testing.T) {
	s := New()

	first := s.CreateOffspring(models.InsertOffspring{BreedingRecordID: 1})
	s.CreateOffspring(models.InsertOffspring{BreedingRecordID: 2})
	second := s.CreateOffspring(models.InsertOffspring{BreedingRecordID: 1})

	litter := s.OffspringByBreedingRecord(1)
	require.Len(t, litter, 2)
	assert.Equal(t, first.ID, litter[0].ID)
	assert.Equal(t, second.ID, litter[1].ID)
	assert.Equal(t, models.OffspringAlive, litter[0].Status)
}

func TestExpensesByDateRange_InclusiveLexicalBounds(t *testing.T) {
	s := New()
	for _, date := range []string{"2024-05-31", "2024-06-01", "2024-06-15", "2024-06-30", "2024-07-01"} {
		s.CreateExpense(models.InsertExpense{
			Category:    models.ExpenseFeed,
			Description: "pellets",
			Amount:      "10.00",
			Date:        date,
		})
	}

	got := s.ExpensesByDateRange("2024-06-01", "2024-06-30")
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.Equal(t, "2024-06-30", got[2].Date)
}

func TestList_PreservesInsertionOrderAfterDelete(t *testing.T) {
	s := New()
	s.CreateExpense(models.InsertExpense{Category: "feed", Description: "a", Amount: "1", Date: "2024-06-01"})
	b := s.CreateExpense(models.InsertExpense{Category: "feed", Description: "b", Amount: "2", Date: "2024-06-02"})
	s.CreateExpense(models.InsertExpense{Category: "feed", Description: "c", Amount: "3", Date: "2024-06-03"})

	require.True(t, s.DeleteExpense(b.ID))

	got := s.Expenses()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description)
	assert.Equal(t, "c", got[1].Description)
}

func TestButcherRecord_RoundTripsMeatDistribution(t *testing.T) {
	s := New()
	rabbitID := 3
	rec := s.CreateButcherRecord(models.InsertButcherRecord{
		RabbitID:    &rabbitID,
		ButcherDate: "2024-06-20",
		MeatDistribution: map[string]any{
			"cuts":       []string{"loin", "leg"},
			"recipients": []string{"freezer"},
		},
	})

	got := s.ButcherRecords()
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, []string{"loin", "leg"}, got[0].MeatDistribution["cuts"])

	value := "35.00"
	updated, ok := s.UpdateButcherRecord(rec.ID, models.ButcherRecordPatch{TotalValue: &value})
	require.True(t, ok)
	require.NotNil(t, updated.TotalValue)
	assert.Equal(t, "35.00", *updated.TotalValue)
	assert.NotNil(t, updated.MeatDistribution, "patch without distribution keeps the stored one")
}
