package models

import "time"

// Breeding record statuses.
const (
	BreedingExpecting = "expecting"
	BreedingKindled   = "kindled"
	BreedingWeaned    = "weaned"
	BreedingFailed    = "failed"
)

// BreedingRecord tracks one mating and its litter timeline. MotherID/FatherID
// reference rabbits but are not enforced against the store.
type BreedingRecord struct {
	ID                 int       `json:"id"`
	MotherID           int       `json:"motherId"`
	FatherID           int       `json:"fatherId"`
	MatingDate         string    `json:"matingDate"`
	ExpectedKindleDate string    `json:"expectedKindleDate"`
	ActualKindleDate   *string   `json:"actualKindleDate"`
	NestBoxDate        *string   `json:"nestBoxDate"`
	LitterSize         *int      `json:"litterSize"`
	KitsAlive          *int      `json:"kitsAlive"`
	Status             string    `json:"status"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
}

// InsertBreedingRecord is the create payload. ExpectedKindleDate may be left
// empty; the service fills it with matingDate + 31 days.
type InsertBreedingRecord struct {
	MotherID           int     `json:"motherId" binding:"required"`
	FatherID           int     `json:"fatherId" binding:"required"`
	MatingDate         string  `json:"matingDate" binding:"required,datetime=2006-01-02"`
	ExpectedKindleDate string  `json:"expectedKindleDate" binding:"omitempty,datetime=2006-01-02"`
	ActualKindleDate   *string `json:"actualKindleDate" binding:"omitempty,datetime=2006-01-02"`
	NestBoxDate        *string `json:"nestBoxDate" binding:"omitempty,datetime=2006-01-02"`
	LitterSize         *int    `json:"litterSize"`
	KitsAlive          *int    `json:"kitsAlive"`
	Status             string  `json:"status" binding:"omitempty,oneof=expecting kindled weaned failed"`
	Notes              *string `json:"notes"`
}

// BreedingRecordPatch carries a partial update; nil fields are left untouched.
type BreedingRecordPatch struct {
	MotherID           *int    `json:"motherId"`
	FatherID           *int    `json:"fatherId"`
	MatingDate         *string `json:"matingDate" binding:"omitempty,datetime=2006-01-02"`
	ExpectedKindleDate *string `json:"expectedKindleDate" binding:"omitempty,datetime=2006-01-02"`
	ActualKindleDate   *string `json:"actualKindleDate" binding:"omitempty,datetime=2006-01-02"`
	NestBoxDate        *string `json:"nestBoxDate" binding:"omitempty,datetime=2006-01-02"`
	LitterSize         *int    `json:"litterSize"`
	KitsAlive          *int    `json:"kitsAlive"`
	Status             *string `json:"status" binding:"omitempty,oneof=expecting kindled weaned failed"`
	Notes              *string `json:"notes"`
}
