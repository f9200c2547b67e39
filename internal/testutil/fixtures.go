package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewOwnerID returns an owner id unique within the test run.
func NewOwnerID() string {
	return fmt.Sprintf("owner-%d", nextID())
}

// Day parses a YYYY-MM-DD literal.
func Day(s string) time.Time {
	return dates.MustParse(s)
}

// CreateTestBudget creates an untouched budget (currentAmount = totalAmount)
// for ownerID over [start, end].
func CreateTestBudget(t *testing.T, db *gorm.DB, ownerID string, total, savings int64, start, end string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		OwnerID:       ownerID,
		TotalAmount:   decimal.NewFromInt(total),
		CurrentAmount: decimal.NewFromInt(total),
		SavingsTarget: decimal.NewFromInt(savings),
		StartDate:     Day(start),
		EndDate:       Day(end),
		Version:       1,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpense inserts an expense and decrements the budget balance
// the way the expense service does.
func CreateTestExpense(t *testing.T, db *gorm.DB, budget *models.Budget, category string, amount string, date string) *models.Expense {
	t.Helper()

	value := decimal.RequireFromString(amount)
	expense := &models.Expense{
		OwnerID:  budget.OwnerID,
		BudgetID: budget.ID,
		Category: category,
		Name:     fmt.Sprintf("%s %d", category, nextID()),
		Amount:   value,
		Date:     Day(date),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	budget.CurrentAmount = budget.CurrentAmount.Sub(value)
	budget.Version++
	if err := db.Model(budget).Updates(map[string]interface{}{
		"current_amount": budget.CurrentAmount,
		"version":        budget.Version,
	}).Error; err != nil {
		t.Fatalf("failed to update test budget balance: %v", err)
	}
	return expense
}

// CreateTestSubscription creates a subscription for ownerID.
func CreateTestSubscription(t *testing.T, db *gorm.DB, ownerID string, cycle models.SubscriptionCycle, amount int64, start string) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		OwnerID:   ownerID,
		Name:      fmt.Sprintf("Subscription %d", nextID()),
		Amount:    decimal.NewFromInt(amount),
		Cycle:     cycle,
		StartDate: Day(start),
		Category:  "Software",
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}
	return sub
}

// ReloadBudget reads the budget row again.
func ReloadBudget(t *testing.T, db *gorm.DB, id string) *models.Budget {
	t.Helper()

	var budget models.Budget
	if err := db.Where("id = ?", id).First(&budget).Error; err != nil {
		t.Fatalf("failed to reload budget %s: %v", id, err)
	}
	return &budget
}
