package models

import "time"

// Expense categories.
const (
	ExpenseFeed       = "feed"
	ExpenseVeterinary = "veterinary"
	ExpenseEquipment  = "equipment"
	ExpenseSupplies   = "supplies"
	ExpenseOther      = "other"
)

// Expense is a single operating cost entry. Amount is a decimal string.
type Expense struct {
	ID          int       `json:"id"`
	Category    string    `json:"category"`
	Subcategory *string   `json:"subcategory"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Vendor      *string   `json:"vendor"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertExpense is the create payload accepted by the API.
type InsertExpense struct {
	Category    string  `json:"category" binding:"required,oneof=feed veterinary equipment supplies other"`
	Subcategory *string `json:"subcategory"`
	Description string  `json:"description" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Vendor      *string `json:"vendor"`
	Notes       *string `json:"notes"`
}

// ExpensePatch carries a partial update; nil fields are left untouched.
type ExpensePatch struct {
	Category    *string `json:"category" binding:"omitempty,oneof=feed veterinary equipment supplies other"`
	Subcategory *string `json:"subcategory"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Vendor      *string `json:"vendor"`
	Notes       *string `json:"notes"`
}
