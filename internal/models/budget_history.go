package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Achievement tags a retired budget by how much of it was left.
type Achievement string

const (
	AchievementGold     Achievement = "Gold"
	AchievementSilver   Achievement = "Silver"
	AchievementBronze   Achievement = "Bronze"
	AchievementFinisher Achievement = "Budget Finisher"
)

// ArchivedEntry is one flattened ledger row of a retired period. Real
// expenses and virtual subscription charges share this shape.
type ArchivedEntry struct {
	Kind        string          `json:"kind"`
	SourceID    string          `json:"sourceId"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// BudgetHistory is an append-only snapshot of a budget taken at rollover.
type BudgetHistory struct {
	Base
	OwnerID         string          `gorm:"not null;index" json:"ownerId"`
	BudgetID        string          `gorm:"type:uuid;not null" json:"budgetId"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalAmount"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"remainingAmount"`
	SavingsTarget   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"savingsTarget"`
	StartDate       time.Time       `gorm:"not null" json:"startDate"`
	EndDate         time.Time       `gorm:"not null" json:"endDate"`
	ArchivedDate    time.Time       `gorm:"not null;index" json:"archivedDate"`
	Entries         []ArchivedEntry `gorm:"serializer:json" json:"entries"`
	Achievement     *Achievement    `json:"achievement"`
}

// TableName keeps the plural form stable across naming strategies.
func (BudgetHistory) TableName() string {
	return "budget_histories"
}

// AfterFind normalises the archived period to UTC.
func (h *BudgetHistory) AfterFind(tx *gorm.DB) error {
	h.StartDate = h.StartDate.UTC()
	h.EndDate = h.EndDate.UTC()
	return nil
}
