package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetwise/internal/dates"
)

// SubscriptionCycle is the billing cadence of a subscription.
type SubscriptionCycle string

const (
	CycleMonthly SubscriptionCycle = "Monthly"
	CycleYearly  SubscriptionCycle = "Yearly"
)

// Valid reports whether c is a supported cycle.
func (c SubscriptionCycle) Valid() bool {
	return c == CycleMonthly || c == CycleYearly
}

// Months is the length of one cycle in months.
func (c SubscriptionCycle) Months() int {
	if c == CycleYearly {
		return 12
	}
	return 1
}

// Subscription is a recurring obligation. It never produces Expense rows;
// its charges are expanded on demand.
type Subscription struct {
	Base
	OwnerID         string            `gorm:"not null;index" json:"ownerId"`
	Name            string            `gorm:"not null" json:"name"`
	Amount          decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"amount"`
	Cycle           SubscriptionCycle `gorm:"not null" json:"cycle"`
	StartDate       time.Time         `gorm:"not null" json:"startDate"`
	Category        string            `json:"category"`
	NextPaymentDate time.Time         `json:"nextPaymentDate"`
}

// BeforeSave derives NextPaymentDate from the start date and cycle.
func (s *Subscription) BeforeSave(tx *gorm.DB) error {
	s.NextPaymentDate = dates.AddMonths(s.StartDate, s.Cycle.Months())
	return nil
}

// AfterFind normalises the subscription dates to UTC.
func (s *Subscription) AfterFind(tx *gorm.DB) error {
	s.StartDate = s.StartDate.UTC()
	s.NextPaymentDate = s.NextPaymentDate.UTC()
	return nil
}
