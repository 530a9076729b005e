package herd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/repository/memstore"
)

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestService() *Service {
	return NewService(memstore.New(), nil).WithClock(fixedClock("2024-06-15"))
}

func TestCreateBreedingRecord_DefaultsExpectedKindleDate(t *testing.T) {
	svc := newTestService()

	view := svc.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID:   1,
		FatherID:   2,
		MatingDate: "2024-06-15",
	})

	assert.Equal(t, "2024-07-16", view.ExpectedKindleDate)
	assert.Equal(t, 31, view.DaysUntilKindle)
	assert.Equal(t, "31 days left", view.Badge.Label)
}

func TestCreateBreedingRecord_KeepsExplicitExpectedDate(t *testing.T) {
	svc := newTestService()

	view := svc.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID:           1,
		FatherID:           2,
		MatingDate:         "2024-06-15",
		ExpectedKindleDate: "2024-07-20",
	})

	assert.Equal(t, "2024-07-20", view.ExpectedKindleDate)
}

func TestBreedingView_ParentNames(t *testing.T) {
	svc := newTestService()

	mother := svc.CreateRabbit(models.InsertRabbit{
		Name: "Clover", Breed: "Rex", Gender: "female", BirthDate: "2023-10-15", IsBreeder: true,
	})

	view := svc.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID:   mother.ID,
		FatherID:   99, // dangling
		MatingDate: "2024-06-15",
	})

	assert.Equal(t, "Clover", view.MotherName)
	assert.Empty(t, view.FatherName, "dangling reference yields an empty name, not an error")
}

func TestEightMonthDoe_FreshPairingScenario(t *testing.T) {
	svc := newTestService()

	doe := svc.CreateRabbit(models.InsertRabbit{
		Name: "Clover", Breed: "Rex", Gender: "female", BirthDate: "2023-10-15", IsBreeder: true,
	})
	buck := svc.CreateRabbit(models.InsertRabbit{
		Name: "Thumper", Breed: "Rex", Gender: "male", BirthDate: "2023-08-01", IsBreeder: true,
	})

	assert.Equal(t, 8, doe.AgeMonths)
	assert.False(t, doe.TooYoungToBreed)

	view := svc.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID:   doe.ID,
		FatherID:   buck.ID,
		MatingDate: "2024-06-15",
	})

	assert.Equal(t, "2024-07-16", view.ExpectedKindleDate)
	assert.Equal(t, "31 days left", view.Badge.Label)
	assert.Equal(t, models.BreedingExpecting, view.Status)
}

func TestListRabbits_DerivedAgeFields(t *testing.T) {
	svc := newTestService()
	svc.CreateRabbit(models.InsertRabbit{
		Name: "Kit", Breed: "Dutch", Gender: "male", BirthDate: "2024-03-20",
	})

	views := svc.ListRabbits()
	require.Len(t, views, 1)
	assert.Equal(t, 3, views[0].AgeMonths)
	assert.Equal(t, "3 months", views[0].Age)
	assert.True(t, views[0].TooYoungToBreed)
}

func TestListOffspring_FiltersByBreedingRecord(t *testing.T) {
	svc := newTestService()
	svc.CreateOffspring(models.InsertOffspring{BreedingRecordID: 1})
	svc.CreateOffspring(models.InsertOffspring{BreedingRecordID: 2})

	assert.Len(t, svc.ListOffspring(0), 2)
	assert.Len(t, svc.ListOffspring(1), 1)
	assert.Empty(t, svc.ListOffspring(3))
}

func TestExpenseOverview(t *testing.T) {
	svc := newTestService()
	svc.CreateExpense(models.InsertExpense{Category: "feed", Description: "pellets", Amount: "45.00", Date: "2024-06-03"})
	svc.CreateExpense(models.InsertExpense{Category: "veterinary", Description: "checkup", Amount: "60.00", Date: "2024-06-10"})

	overview := svc.ExpenseOverview()
	assert.Equal(t, "105.00", overview.Summary.ThisMonthTotal)
	require.Len(t, overview.ByCategory, 2)
	assert.Equal(t, CategoryTotal{Category: "feed", Count: 1, Total: "45.00"}, overview.ByCategory[0])
	assert.Equal(t, CategoryTotal{Category: "veterinary", Count: 1, Total: "60.00"}, overview.ByCategory[1])
}

func TestSnapshot(t *testing.T) {
	svc := newTestService()
	svc.CreateRabbit(models.InsertRabbit{
		Name: "Clover", Breed: "Rex", Gender: "female", BirthDate: "2023-10-15", IsBreeder: true,
	})
	svc.CreateBreedingRecord(models.InsertBreedingRecord{
		MotherID: 1, FatherID: 2, MatingDate: "2024-05-20", ExpectedKindleDate: "2024-06-20",
	})
	svc.CreateExpense(models.InsertExpense{Category: "feed", Description: "pellets", Amount: "45.00", Date: "2024-06-03"})

	snap := svc.Snapshot()
	assert.Equal(t, "2024-06-15", snap.Date)
	assert.Equal(t, 1, snap.TotalRabbits)
	assert.Equal(t, 1, snap.ActiveBreeders)
	assert.Equal(t, 1, snap.LittersDue)
	assert.Equal(t, "45.00", snap.MonthlyExpenses)
	assert.Equal(t, 1, snap.Notifications, "kindle due in five days")
}
