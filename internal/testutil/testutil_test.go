package testutil_test

import (
	"testing"

	"budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"budgets", "expenses", "subscriptions", "budget_histories", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestBudget(t, first, testutil.NewOwnerID(), 1000, 0, "2024-01-01", "2024-01-31")

	var count int64
	second.Model(&models.Budget{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated database, found %d budgets", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	owner := testutil.NewOwnerID()
	budget := testutil.CreateTestBudget(t, db, owner, 1000, 100, "2024-01-01", "2024-01-31")
	if budget.ID == "" {
		t.Fatal("budget should have an id")
	}

	expense := testutil.CreateTestExpense(t, db, budget, "Food", "250.50", "2024-01-05")
	if expense.BudgetID != budget.ID {
		t.Errorf("expected expense in budget %s, got %s", budget.ID, expense.BudgetID)
	}

	reloaded := testutil.ReloadBudget(t, db, budget.ID)
	testutil.AssertDecimal(t, reloaded.CurrentAmount, "749.50", "current amount")
	if reloaded.Version != 2 {
		t.Errorf("expected version 2, got %d", reloaded.Version)
	}

	sub := testutil.CreateTestSubscription(t, db, owner, models.CycleYearly, 120, "2024-01-31")
	if got := sub.NextPaymentDate.Format("2006-01-02"); got != "2025-01-31" {
		t.Errorf("expected next payment 2025-01-31, got %s", got)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.Wrap(errors.ErrInsufficientBudget, nil), "INSUFFICIENT_BUDGET")
	testutil.AssertNoError(t, nil)
}
