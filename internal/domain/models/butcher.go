package models

import "time"

// ButcherRecord captures a processing event for either a rabbit or an
// offspring (one of the two references is expected, neither is enforced).
type ButcherRecord struct {
	ID               int            `json:"id"`
	RabbitID         *int           `json:"rabbitId"`
	OffspringID      *int           `json:"offspringId"`
	ButcherDate      string         `json:"butcherDate"`
	LiveWeight       *string        `json:"liveWeight"`
	DressedWeight    *string        `json:"dressedWeight"`
	ProcessingNotes  *string        `json:"processingNotes"`
	MeatDistribution map[string]any `json:"meatDistribution"`
	TotalValue       *string        `json:"totalValue"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// InsertButcherRecord is the create payload accepted by the API.
type InsertButcherRecord struct {
	RabbitID         *int           `json:"rabbitId"`
	OffspringID      *int           `json:"offspringId"`
	ButcherDate      string         `json:"butcherDate" binding:"required,datetime=2006-01-02"`
	LiveWeight       *string        `json:"liveWeight"`
	DressedWeight    *string        `json:"dressedWeight"`
	ProcessingNotes  *string        `json:"processingNotes"`
	MeatDistribution map[string]any `json:"meatDistribution"`
	TotalValue       *string        `json:"totalValue"`
}

// ButcherRecordPatch carries a partial update; nil fields are left untouched.
type ButcherRecordPatch struct {
	RabbitID         *int           `json:"rabbitId"`
	OffspringID      *int           `json:"offspringId"`
	ButcherDate      *string        `json:"butcherDate" binding:"omitempty,datetime=2006-01-02"`
	LiveWeight       *string        `json:"liveWeight"`
	DressedWeight    *string        `json:"dressedWeight"`
	ProcessingNotes  *string        `json:"processingNotes"`
	MeatDistribution map[string]any `json:"meatDistribution"`
	TotalValue       *string        `json:"totalValue"`
}
