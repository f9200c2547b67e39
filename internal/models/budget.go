package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the owner's active spending period. CurrentAmount is the running
// balance: TotalAmount minus the expenses recorded against this budget.
type Budget struct {
	Base
	OwnerID       string          `gorm:"not null;uniqueIndex" json:"ownerId"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalAmount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"currentAmount"`
	SavingsTarget decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"savingsTarget"`
	StartDate     time.Time       `gorm:"not null" json:"startDate"`
	EndDate       time.Time       `gorm:"not null" json:"endDate"`

	// Version is bumped by every balance mutation and guards rollover deletes.
	Version int64 `gorm:"not null;default:1" json:"version"`
}

// SpendableBudget is the amount available for spending once the savings
// target is set aside. It may be zero or negative.
func (b *Budget) SpendableBudget() decimal.Decimal {
	return b.TotalAmount.Sub(b.SavingsTarget)
}

// AfterFind normalises the period to UTC whatever zone the driver used.
func (b *Budget) AfterFind(tx *gorm.DB) error {
	b.StartDate = b.StartDate.UTC()
	b.EndDate = b.EndDate.UTC()
	return nil
}
