// Package forecast projects where a budget period will end up from the
// spending recorded so far.
package forecast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/ledger"
	"budgetwise/internal/models"
)

// Trend classifies spending pace against elapsed time.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendCaution Trend = "caution"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

const (
	StatusOverspending = "Overspending Warning"
	StatusAhead        = "Slightly Ahead of Schedule"
	StatusOnTrack      = "On Track"
	StatusNoBudget     = "No active budget. Create a budget to see your forecast."
)

const (
	// ProjectionMonths is the length of the net-worth projection.
	ProjectionMonths = 12

	// AnomalyWindowDays is how far back from today anomalies are looked for.
	AnomalyWindowDays = 3
)

var (
	hundred        = decimal.NewFromInt(100)
	thirty         = decimal.NewFromInt(30)
	anomalyAmount  = decimal.NewFromInt(1000)
	overspendSlack = decimal.NewFromInt(10)
)

// Point is one month of the net-worth projection.
type Point struct {
	Month    int             `json:"month"`
	Date     string          `json:"date"`
	NetWorth decimal.Decimal `json:"netWorth"`
}

// Result is the forecast of one budget period.
type Result struct {
	HasBudget       bool            `json:"hasBudget"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	PredictedAmount decimal.Decimal `json:"predictedAmount"`
	AvgDaily        decimal.Decimal `json:"avgDaily"`
	DaysRemaining   int             `json:"daysRemaining"`
	TotalBudgetDays int             `json:"totalBudgetDays"`
	DaysElapsed     int             `json:"daysElapsed"`
	SpendableBudget decimal.Decimal `json:"spendableBudget"`
	Trend           Trend           `json:"trend"`
	StatusMessage   string          `json:"statusMessage"`
	BurnRate        decimal.Decimal `json:"burnRate"`
	TimePercent     decimal.Decimal `json:"timePercent"`
	Projection      []Point         `json:"projection"`
	AnomalyAlert    *string         `json:"anomalyAlert"`
	SavingsVelocity decimal.Decimal `json:"savingsVelocity"`
}

// NoBudget is the forecast of an owner without an active budget.
func NoBudget() Result {
	return Result{
		TotalSpent:      decimal.Zero,
		PredictedAmount: decimal.Zero,
		AvgDaily:        decimal.Zero,
		SpendableBudget: decimal.Zero,
		Trend:           TrendNeutral,
		StatusMessage:   StatusNoBudget,
		BurnRate:        decimal.Zero,
		TimePercent:     decimal.Zero,
		Projection:      []Point{},
		SavingsVelocity: decimal.Zero,
	}
}

// Forecast projects the end of budget's period as seen on today. Only
// recorded expenses count as spent; subscriptions contribute their charges
// still to come. A nil budget yields NoBudget. Day maths runs in UTC, with
// today taken as the calendar day of its own zone.
func Forecast(budget *models.Budget, expenses []models.Expense, subscriptions []models.Subscription, today time.Time) Result {
	if budget == nil {
		return NoBudget()
	}

	today = dates.Civil(today)
	todayStart := dates.StartOfDay(today)
	start := dates.StartOfDay(budget.StartDate.UTC())
	end := dates.StartOfDay(budget.EndDate.UTC())

	totalBudgetDays := max(1, dates.CeilDays(start, end))
	elapsedUntil := dates.NextMidnight(today)
	if end.Before(elapsedUntil) {
		elapsedUntil = end
	}
	daysElapsed := max(1, dates.CeilDays(start, elapsedUntil))
	daysRemaining := max(0, dates.CeilDays(todayStart, end))

	spent := ledger.Aggregate(expenses, nil, start, dates.EffectiveEnd(today, end)).TotalSpent
	avgDaily := spent.Div(decimal.NewFromInt(int64(daysElapsed)))

	future := futureCharges(subscriptions, todayStart, end, daysRemaining)
	predicted := spent.Add(avgDaily.Mul(decimal.NewFromInt(int64(daysRemaining)))).Add(future)

	spendable := budget.SpendableBudget()
	budgetPercent := decimal.Zero
	if spendable.IsPositive() {
		budgetPercent = spent.Div(spendable).Mul(hundred)
	}
	timePercent := decimal.NewFromInt(int64(daysElapsed)).Div(decimal.NewFromInt(int64(totalBudgetDays))).Mul(hundred)
	trend, status := classify(budgetPercent, timePercent)

	monthlyBudget := budget.TotalAmount.Mul(thirty).Div(decimal.NewFromInt(int64(totalBudgetDays)))
	monthlyExpenses := avgDaily.Mul(thirty)
	savings := decimal.Max(decimal.Zero, monthlyBudget.Sub(monthlyExpenses))

	return Result{
		HasBudget:       true,
		TotalSpent:      spent.Round(2),
		PredictedAmount: predicted.Round(2),
		AvgDaily:        avgDaily.Round(2),
		DaysRemaining:   daysRemaining,
		TotalBudgetDays: totalBudgetDays,
		DaysElapsed:     daysElapsed,
		SpendableBudget: spendable.Round(2),
		Trend:           trend,
		StatusMessage:   status,
		BurnRate:        budgetPercent.Round(2),
		TimePercent:     timePercent.Round(2),
		Projection:      project(budget.CurrentAmount, savings, todayStart),
		AnomalyAlert:    anomalies(expenses, todayStart),
		SavingsVelocity: savings.Round(2),
	}
}

// futureCharges estimates the subscription money still to be charged
// between today (exclusive) and end.
func futureCharges(subscriptions []models.Subscription, todayStart, end time.Time, daysRemaining int) decimal.Decimal {
	total := decimal.Zero
	remaining := decimal.NewFromInt(int64(daysRemaining))
	for _, sub := range subscriptions {
		switch sub.Cycle {
		case models.CycleMonthly:
			total = total.Add(sub.Amount.Mul(remaining).Div(thirty))
		case models.CycleYearly:
			next := NextAnniversary(sub.StartDate, todayStart)
			if next.After(todayStart) && !next.After(end) {
				total = total.Add(sub.Amount)
			}
		}
	}
	return total
}

// NextAnniversary is the first anniversary of start strictly after today:
// this year's if still ahead, otherwise next year's.
func NextAnniversary(start, today time.Time) time.Time {
	day := dates.StartOfDay(today)
	next := dates.Clamped(day.Year(), start.Month(), start.Day(), day.Location())
	if !next.After(day) {
		next = dates.Clamped(day.Year()+1, start.Month(), start.Day(), day.Location())
	}
	return next
}

func classify(budgetPercent, timePercent decimal.Decimal) (Trend, string) {
	switch {
	case budgetPercent.GreaterThan(timePercent.Add(overspendSlack)):
		return TrendUp, StatusOverspending
	case budgetPercent.GreaterThan(timePercent):
		return TrendCaution, StatusAhead
	case budgetPercent.IsPositive():
		return TrendDown, StatusOnTrack
	default:
		return TrendNeutral, StatusOnTrack
	}
}

// project adds monthlySavings to netWorth once per month, additively.
func project(netWorth, monthlySavings decimal.Decimal, todayStart time.Time) []Point {
	points := make([]Point, 0, ProjectionMonths)
	month := time.Date(todayStart.Year(), todayStart.Month(), 1, 0, 0, 0, 0, todayStart.Location())
	for i := 1; i <= ProjectionMonths; i++ {
		netWorth = netWorth.Add(monthlySavings)
		points = append(points, Point{
			Month:    i,
			Date:     month.AddDate(0, i, 0).Format("2006-01"),
			NetWorth: netWorth.Round(0),
		})
	}
	return points
}

// anomalies flags large recent expenses. It returns nil when there are none.
func anomalies(expenses []models.Expense, todayStart time.Time) *string {
	from := todayStart.AddDate(0, 0, -AnomalyWindowDays)
	count := 0
	for _, e := range expenses {
		if !dates.Within(e.Date, from, todayStart) {
			continue
		}
		if e.IsHighValue || e.Amount.GreaterThanOrEqual(anomalyAmount) {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	noun := "transactions"
	if count == 1 {
		noun = "transaction"
	}
	alert := fmt.Sprintf("Unusual spending detected: %d high-value %s in the last %d days.", count, noun, AnomalyWindowDays)
	return &alert
}
