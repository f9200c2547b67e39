// Package lifecycle scores and archives budgets when a new period replaces
// them. Persistence of the transition lives in the budget service.
package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetwise/internal/ledger"
	"budgetwise/internal/models"
)

var (
	goldThreshold   = decimal.NewFromInt(30)
	silverThreshold = decimal.NewFromInt(15)
	bronzeThreshold = decimal.NewFromInt(5)
)

// RemainingPercent is remaining as a percentage of total. It is zero when
// total is not positive.
func RemainingPercent(remaining, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return remaining.Div(total).Mul(decimal.NewFromInt(100))
}

// ScoreAchievement tags a retiring budget by the share of it left unspent:
// 30% or more is Gold, 15% Silver, 5% Bronze, and anything less still earns
// "Budget Finisher". Budgets without a positive total get no tag.
func ScoreAchievement(remaining, total decimal.Decimal) *models.Achievement {
	if !total.IsPositive() {
		return nil
	}
	pct := RemainingPercent(remaining, total)

	var a models.Achievement
	switch {
	case pct.GreaterThanOrEqual(goldThreshold):
		a = models.AchievementGold
	case pct.GreaterThanOrEqual(silverThreshold):
		a = models.AchievementSilver
	case pct.GreaterThanOrEqual(bronzeThreshold):
		a = models.AchievementBronze
	default:
		a = models.AchievementFinisher
	}
	return &a
}

// Archive snapshots old with its unified ledger: every expense recorded
// against it, whatever the date, and the subscription charges its window
// owed. The real entries therefore sum to TotalAmount - CurrentAmount.
func Archive(old *models.Budget, expenses []models.Expense, subscriptions []models.Subscription, now time.Time) *models.BudgetHistory {
	entries := ledger.Combine(expenses, subscriptions, old.StartDate, old.EndDate)
	return &models.BudgetHistory{
		OwnerID:         old.OwnerID,
		BudgetID:        old.ID,
		TotalAmount:     old.TotalAmount,
		RemainingAmount: old.CurrentAmount,
		SavingsTarget:   old.SavingsTarget,
		StartDate:       old.StartDate,
		EndDate:         old.EndDate,
		ArchivedDate:    now,
		Entries:         ledger.Archive(entries),
		Achievement:     ScoreAchievement(old.CurrentAmount, old.TotalAmount),
	}
}
