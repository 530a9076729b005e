package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

func TestNotifications_KindleWindow(t *testing.T) {
	today := testDay("2024-06-15")

	records := []models.BreedingRecord{
		func() models.BreedingRecord { r := expecting("2024-05-15", "2024-06-15"); r.ID = 1; return r }(), // today
		func() models.BreedingRecord { r := expecting("2024-05-22", "2024-06-22"); r.ID = 2; return r }(), // +7, inclusive
		func() models.BreedingRecord { r := expecting("2024-05-23", "2024-06-23"); r.ID = 3; return r }(), // +8, out
		func() models.BreedingRecord { r := expecting("2024-05-10", "2024-06-10"); r.ID = 4; return r }(), // overdue, out
	}

	got := Notifications(records, nil, today)
	require.Len(t, got, 2)

	assert.Equal(t, "kindle-1", got[0].ID)
	assert.Equal(t, NotificationKindle, got[0].Kind)
	assert.Equal(t, "Kindle Due", got[0].Title)
	assert.Equal(t, "Record #1 is due today", got[0].Message)
	assert.Equal(t, "2024-06-15", got[0].DueDate)

	assert.Equal(t, "kindle-2", got[1].ID)
	assert.Equal(t, "Record #2 is due in 7 days", got[1].Message)
}

func TestNotifications_SkipsSettledRecords(t *testing.T) {
	today := testDay("2024-06-15")
	rec := expecting("2024-05-15", "2024-06-16")
	rec.Status = models.BreedingKindled

	assert.Empty(t, Notifications([]models.BreedingRecord{rec}, nil, today))
}

func TestNotifications_HealthOverdue(t *testing.T) {
	today := testDay("2024-06-15")
	old := "2024-03-01"    // 106 days ago
	recent := "2024-04-01" // 75 days ago

	rabbits := []models.Rabbit{
		{ID: 1, Name: "Clover", LastHealthCheck: &old},
		{ID: 2, Name: "Thumper", LastHealthCheck: &recent},
		{ID: 3, Name: "Hazel"}, // never checked, never flagged
	}

	got := Notifications(nil, rabbits, today)
	require.Len(t, got, 1)
	assert.Equal(t, "health-1", got[0].ID)
	assert.Equal(t, NotificationHealth, got[0].Kind)
	assert.Equal(t, "Clover was last checked 106 days ago", got[0].Message)
	assert.Equal(t, "2024-05-30", got[0].DueDate)
}

func TestNotifications_ExactlyNinetyDaysIsNotOverdue(t *testing.T) {
	today := testDay("2024-06-15")
	check := today.AddDate(0, 0, -90).Format("2006-01-02")
	rabbits := []models.Rabbit{{ID: 1, Name: "Clover", LastHealthCheck: &check}}

	assert.Empty(t, Notifications(nil, rabbits, today))
}

func TestNotifications_KindleEntriesPrecedeHealth(t *testing.T) {
	today := testDay("2024-06-15")
	old := "2024-01-01"

	records := []models.BreedingRecord{expecting("2024-05-17", "2024-06-17")}
	rabbits := []models.Rabbit{{ID: 9, Name: "Hazel", LastHealthCheck: &old}}

	got := Notifications(records, rabbits, today)
	require.Len(t, got, 2)
	assert.Equal(t, NotificationKindle, got[0].Kind)
	assert.Equal(t, NotificationHealth, got[1].Kind)
}

func TestNotifications_EmptyInput(t *testing.T) {
	assert.Empty(t, Notifications(nil, nil, testDay("2024-06-15")))
}
