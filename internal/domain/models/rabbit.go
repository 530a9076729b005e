package models

import "time"

// Rabbit statuses.
const (
	RabbitActive    = "active"
	RabbitSold      = "sold"
	RabbitButchered = "butchered"
	RabbitDeceased  = "deceased"
)

// Rabbit is a single animal in the herd. Dates are ISO "2006-01-02" strings,
// weights are decimal strings. MotherID/FatherID are unchecked references.
type Rabbit struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Breed           string    `json:"breed"`
	Gender          string    `json:"gender"`
	BirthDate       string    `json:"birthDate"`
	Weight          *string   `json:"weight"`
	Color           *string   `json:"color"`
	Status          string    `json:"status"`
	IsBreeder       bool      `json:"isBreeder"`
	MotherID        *int      `json:"motherId"`
	FatherID        *int      `json:"fatherId"`
	PhotoURL        *string   `json:"photoUrl"`
	LastHealthCheck *string   `json:"lastHealthCheck"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertRabbit is the create payload accepted by the API.
type InsertRabbit struct {
	Name            string  `json:"name" binding:"required"`
	Breed           string  `json:"breed" binding:"required"`
	Gender          string  `json:"gender" binding:"required,oneof=male female"`
	BirthDate       string  `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Weight          *string `json:"weight"`
	Color           *string `json:"color"`
	Status          string  `json:"status" binding:"omitempty,oneof=active sold butchered deceased"`
	IsBreeder       bool    `json:"isBreeder"`
	MotherID        *int    `json:"motherId"`
	FatherID        *int    `json:"fatherId"`
	PhotoURL        *string `json:"photoUrl"`
	LastHealthCheck *string `json:"lastHealthCheck" binding:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}

// RabbitPatch carries a partial update; nil fields are left untouched.
type RabbitPatch struct {
	Name            *string `json:"name"`
	Breed           *string `json:"breed"`
	Gender          *string `json:"gender" binding:"omitempty,oneof=male female"`
	BirthDate       *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Weight          *string `json:"weight"`
	Color           *string `json:"color"`
	Status          *string `json:"status" binding:"omitempty,oneof=active sold butchered deceased"`
	IsBreeder       *bool   `json:"isBreeder"`
	MotherID        *int    `json:"motherId"`
	FatherID        *int    `json:"fatherId"`
	PhotoURL        *string `json:"photoUrl"`
	LastHealthCheck *string `json:"lastHealthCheck" binding:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}
