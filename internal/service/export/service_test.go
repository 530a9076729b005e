package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/repository/memstore"
)

type fakeSheets struct {
	cleared  []string
	appended map[string][][]interface{}
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{appended: make(map[string][][]interface{})}
}

func (f *fakeSheets) ClearRange(_ context.Context, sheetRange string) error {
	f.cleared = append(f.cleared, sheetRange)
	return nil
}

func (f *fakeSheets) AppendRows(_ context.Context, sheetRange string, rows [][]interface{}) error {
	f.appended[sheetRange] = rows
	return nil
}

func TestExportAll(t *testing.T) {
	store := memstore.New()
	store.CreateRabbit(models.InsertRabbit{
		Name: "Clover", Breed: "Rex", Gender: "female", BirthDate: "2023-10-15", IsBreeder: true,
	})
	store.CreateExpense(models.InsertExpense{
		Category: "feed", Description: "pellets", Amount: "45.00", Date: "2024-06-03",
	})

	sheets := newFakeSheets()
	err := NewService(store, sheets, nil).ExportAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, sheets.cleared, 5, "every tab is cleared")

	rabbits := sheets.appended[rabbitsRange]
	require.Len(t, rabbits, 2, "header plus one rabbit")
	assert.Equal(t, "Name", rabbits[0][1])
	assert.Equal(t, "Clover", rabbits[1][1])
	assert.Equal(t, "", rabbits[1][5], "nil weight exports as empty cell")

	expenses := sheets.appended[expensesRange]
	require.Len(t, expenses, 2)
	assert.Equal(t, "45.00", expenses[1][4])

	// Empty collections still ship their header row.
	assert.Len(t, sheets.appended[breedingRange], 1)
	assert.Len(t, sheets.appended[butcherRange], 1)
}
