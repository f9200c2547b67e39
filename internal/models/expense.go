package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a discrete charge recorded against the owner's active budget.
type Expense struct {
	Base
	OwnerID     string          `gorm:"not null;index" json:"ownerId"`
	BudgetID    string          `gorm:"type:uuid;not null;index" json:"budgetId"`
	Category    string          `gorm:"not null" json:"category"`
	Name        string          `gorm:"not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `json:"description,omitempty"`
	Mood        string          `json:"mood,omitempty"`
	IsHighValue bool            `gorm:"default:false" json:"isHighValue"`
}

// AfterFind normalises the expense date to UTC.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.UTC()
	return nil
}
