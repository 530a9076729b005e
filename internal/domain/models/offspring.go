package models

import "time"

// Offspring statuses.
const (
	OffspringAlive     = "alive"
	OffspringSold      = "sold"
	OffspringButchered = "butchered"
	OffspringDeceased  = "deceased"
	OffspringKept      = "kept"
)

// Offspring is a kit belonging to one breeding record's litter.
type Offspring struct {
	ID               int       `json:"id"`
	BreedingRecordID int       `json:"breedingRecordId"`
	Gender           *string   `json:"gender"`
	Weight           *string   `json:"weight"`
	Color            *string   `json:"color"`
	Status           string    `json:"status"`
	SalePrice        *string   `json:"salePrice"`
	SaleDate         *string   `json:"saleDate"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// InsertOffspring is the create payload accepted by the API.
type InsertOffspring struct {
	BreedingRecordID int     `json:"breedingRecordId" binding:"required"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=male female unknown"`
	Weight           *string `json:"weight"`
	Color            *string `json:"color"`
	Status           string  `json:"status" binding:"omitempty,oneof=alive sold butchered deceased kept"`
	SalePrice        *string `json:"salePrice"`
	SaleDate         *string `json:"saleDate" binding:"omitempty,datetime=2006-01-02"`
	Notes            *string `json:"notes"`
}

// OffspringPatch carries a partial update; nil fields are left untouched.
type OffspringPatch struct {
	BreedingRecordID *int    `json:"breedingRecordId"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=male female unknown"`
	Weight           *string `json:"weight"`
	Color            *string `json:"color"`
	Status           *string `json:"status" binding:"omitempty,oneof=alive sold butchered deceased kept"`
	SalePrice        *string `json:"salePrice"`
	SaleDate         *string `json:"saleDate" binding:"omitempty,datetime=2006-01-02"`
	Notes            *string `json:"notes"`
}
