package models

import "time"

// HerdSnapshot is the nightly aggregate archived to MongoDB. One document per
// calendar day; re-running the job for the same day replaces the document.
type HerdSnapshot struct {
	Date            string    `bson:"date" json:"date"`
	TotalRabbits    int       `bson:"total_rabbits" json:"totalRabbits"`
	ActiveBreeders  int       `bson:"active_breeders" json:"activeBreeders"`
	LittersDue      int       `bson:"litters_due" json:"littersDue"`
	MonthlyExpenses string    `bson:"monthly_expenses" json:"monthlyExpenses"`
	Notifications   int       `bson:"notifications" json:"notifications"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
