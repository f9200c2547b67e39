package forecast

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
)

// TestFeatures runs the forecast feature scenarios.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "forecast",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{"features"},
			Randomize: 0,
			Strict:    true,
			TestingT:  t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type scenario struct {
	budget        *models.Budget
	expenses      []models.Expense
	subscriptions []models.Subscription
	result        Result
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &scenario{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*s = scenario{}
		return ctx, nil
	})

	ctx.Step(`^a budget of (\S+) with savings target (\S+) from "([^"]*)" to "([^"]*)"$`, s.aBudget)
	ctx.Step(`^the current balance is (\S+)$`, s.theCurrentBalanceIs)
	ctx.Step(`^an expense of (\S+) in "([^"]*)" on "([^"]*)"$`, s.anExpense)
	ctx.Step(`^a high-value expense of (\S+) on "([^"]*)"$`, s.aHighValueExpense)
	ctx.Step(`^a (Monthly|Yearly) subscription of (\S+) starting "([^"]*)"$`, s.aSubscription)
	ctx.Step(`^no active budget$`, s.noActiveBudget)
	ctx.Step(`^I forecast on "([^"]*)"$`, s.iForecastOn)

	ctx.Step(`^total budget days should be (\d+)$`, s.totalBudgetDaysShouldBe)
	ctx.Step(`^days elapsed should be (\d+)$`, s.daysElapsedShouldBe)
	ctx.Step(`^days remaining should be (\d+)$`, s.daysRemainingShouldBe)
	ctx.Step(`^the average daily spend should be (\S+)$`, s.theAverageDailySpendShouldBe)
	ctx.Step(`^the predicted amount should be (\S+)$`, s.thePredictedAmountShouldBe)
	ctx.Step(`^the burn rate should be (\S+)$`, s.theBurnRateShouldBe)
	ctx.Step(`^the savings velocity should be (\S+)$`, s.theSavingsVelocityShouldBe)
	ctx.Step(`^the trend should be "([^"]*)" with status "([^"]*)"$`, s.theTrendShouldBe)
	ctx.Step(`^the projection should have (\d+) points ending at (\S+)$`, s.theProjectionShouldEndAt)
	ctx.Step(`^there should be no anomaly alert$`, s.thereShouldBeNoAnomalyAlert)
	ctx.Step(`^there should be an anomaly alert mentioning (\d+)$`, s.thereShouldBeAnAnomalyAlert)
	ctx.Step(`^the forecast should report no budget$`, s.theForecastShouldReportNoBudget)
}

func (s *scenario) aBudget(total, savings, start, end string) error {
	totalAmount, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}
	savingsTarget, err := decimal.NewFromString(savings)
	if err != nil {
		return err
	}
	s.budget = &models.Budget{
		Base:          models.Base{ID: "budget-1"},
		OwnerID:       "owner-1",
		TotalAmount:   totalAmount,
		CurrentAmount: totalAmount,
		SavingsTarget: savingsTarget,
		StartDate:     dates.MustParse(start),
		EndDate:       dates.MustParse(end),
	}
	return nil
}

func (s *scenario) theCurrentBalanceIs(value string) error {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	s.budget.CurrentAmount = amount
	return nil
}

func (s *scenario) addExpense(value, category, date string, highValue bool) error {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	s.expenses = append(s.expenses, models.Expense{
		Base:        models.Base{ID: fmt.Sprintf("expense-%d", len(s.expenses)+1)},
		OwnerID:     "owner-1",
		Category:    category,
		Name:        category,
		Amount:      amount,
		Date:        dates.MustParse(date),
		IsHighValue: highValue,
	})
	return nil
}

func (s *scenario) anExpense(value, category, date string) error {
	return s.addExpense(value, category, date, false)
}

func (s *scenario) aHighValueExpense(value, date string) error {
	return s.addExpense(value, "Misc", date, true)
}

func (s *scenario) aSubscription(cycle, value, start string) error {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	s.subscriptions = append(s.subscriptions, models.Subscription{
		Base:      models.Base{ID: fmt.Sprintf("sub-%d", len(s.subscriptions)+1)},
		OwnerID:   "owner-1",
		Name:      cycle + " plan",
		Amount:    amount,
		Cycle:     models.SubscriptionCycle(cycle),
		StartDate: dates.MustParse(start),
	})
	return nil
}

func (s *scenario) noActiveBudget() error {
	s.budget = nil
	return nil
}

func (s *scenario) iForecastOn(today string) error {
	s.result = Forecast(s.budget, s.expenses, s.subscriptions, dates.MustParse(today))
	return nil
}

func expectInt(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("expected %s %d, got %d", name, want, got)
	}
	return nil
}

func expectDecimal(name string, got decimal.Decimal, want string) error {
	expected, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !got.Equal(expected) {
		return fmt.Errorf("expected %s %s, got %s", name, expected, got)
	}
	return nil
}

func (s *scenario) totalBudgetDaysShouldBe(want int) error {
	return expectInt("total budget days", s.result.TotalBudgetDays, want)
}

func (s *scenario) daysElapsedShouldBe(want int) error {
	return expectInt("days elapsed", s.result.DaysElapsed, want)
}

func (s *scenario) daysRemainingShouldBe(want int) error {
	return expectInt("days remaining", s.result.DaysRemaining, want)
}

func (s *scenario) theAverageDailySpendShouldBe(want string) error {
	return expectDecimal("average daily spend", s.result.AvgDaily, want)
}

func (s *scenario) thePredictedAmountShouldBe(want string) error {
	return expectDecimal("predicted amount", s.result.PredictedAmount, want)
}

func (s *scenario) theBurnRateShouldBe(want string) error {
	return expectDecimal("burn rate", s.result.BurnRate, want)
}

func (s *scenario) theSavingsVelocityShouldBe(want string) error {
	return expectDecimal("savings velocity", s.result.SavingsVelocity, want)
}

func (s *scenario) theTrendShouldBe(trend, status string) error {
	if string(s.result.Trend) != trend || s.result.StatusMessage != status {
		return fmt.Errorf("expected %s/%q, got %s/%q", trend, status, s.result.Trend, s.result.StatusMessage)
	}
	return nil
}

func (s *scenario) theProjectionShouldEndAt(points int, last string) error {
	if err := expectInt("projection points", len(s.result.Projection), points); err != nil {
		return err
	}
	return expectDecimal("final net worth", s.result.Projection[points-1].NetWorth, last)
}

func (s *scenario) thereShouldBeNoAnomalyAlert() error {
	if s.result.AnomalyAlert != nil {
		return fmt.Errorf("expected no anomaly alert, got %q", *s.result.AnomalyAlert)
	}
	return nil
}

func (s *scenario) thereShouldBeAnAnomalyAlert(count int) error {
	if s.result.AnomalyAlert == nil {
		return fmt.Errorf("expected an anomaly alert")
	}
	if !strings.Contains(*s.result.AnomalyAlert, fmt.Sprintf("%d ", count)) {
		return fmt.Errorf("expected alert to mention %d, got %q", count, *s.result.AnomalyAlert)
	}
	return nil
}

func (s *scenario) theForecastShouldReportNoBudget() error {
	if s.result.HasBudget {
		return fmt.Errorf("expected hasBudget false")
	}
	if s.result.StatusMessage != StatusNoBudget {
		return fmt.Errorf("unexpected status %q", s.result.StatusMessage)
	}
	if len(s.result.Projection) != 0 {
		return fmt.Errorf("expected empty projection, got %d points", len(s.result.Projection))
	}
	return nil
}
