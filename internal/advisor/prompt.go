// Package advisor hands a structured view of the ledger to a text-generation
// collaborator and caches the prose it returns. The text is never parsed.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/forecast"
	"budgetwise/internal/ledger"
	"budgetwise/internal/models"
)

// Generator produces advice text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
	IsAvailable() bool
}

// SubscriptionSummary is one recurring obligation as shown to the generator.
type SubscriptionSummary struct {
	Name     string
	Amount   decimal.Decimal
	Cycle    models.SubscriptionCycle
	Category string
}

// Prompt is everything the generator is told about an owner's period.
type Prompt struct {
	TotalAmount   decimal.Decimal
	Spent         decimal.Decimal
	Remaining     decimal.Decimal
	SavingsTarget decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	Categories    []ledger.CategoryShare
	Subscriptions []SubscriptionSummary
	Forecast      forecast.Result
}

// NewPrompt assembles a prompt from the active budget, the summary of its
// ledger, the owner's subscriptions and the current forecast.
func NewPrompt(budget *models.Budget, summary ledger.Summary, subscriptions []models.Subscription, fc forecast.Result) Prompt {
	subs := make([]SubscriptionSummary, 0, len(subscriptions))
	for _, s := range subscriptions {
		category := s.Category
		if category == "" {
			category = ledger.DefaultSubscriptionCategory
		}
		subs = append(subs, SubscriptionSummary{Name: s.Name, Amount: s.Amount, Cycle: s.Cycle, Category: category})
	}
	return Prompt{
		TotalAmount:   budget.TotalAmount,
		Spent:         summary.TotalSpent,
		Remaining:     budget.CurrentAmount,
		SavingsTarget: budget.SavingsTarget,
		StartDate:     budget.StartDate,
		EndDate:       budget.EndDate,
		Categories:    ledger.CategoryShares(summary),
		Subscriptions: subs,
		Forecast:      fc,
	}
}

// BuildPrompt renders p as the text sent to the generator.
func BuildPrompt(p Prompt) string {
	var sb strings.Builder

	sb.WriteString("You are a personal finance coach. Give short, practical advice (at most five bullet points) ")
	sb.WriteString("for the budget below. Be specific about categories and amounts. Do not invent data.\n\n")

	fmt.Fprintf(&sb, "Budget period: %s to %s\n", dates.ISO(p.StartDate), dates.ISO(p.EndDate))
	fmt.Fprintf(&sb, "Total budget: %s\n", p.TotalAmount.StringFixed(2))
	fmt.Fprintf(&sb, "Savings target: %s\n", p.SavingsTarget.StringFixed(2))
	fmt.Fprintf(&sb, "Spent so far (including subscriptions): %s\n", p.Spent.StringFixed(2))
	fmt.Fprintf(&sb, "Remaining balance: %s\n", p.Remaining.StringFixed(2))

	sb.WriteString("\nSpending by category:\n")
	if len(p.Categories) == 0 {
		sb.WriteString("- none recorded\n")
	}
	for _, c := range p.Categories {
		fmt.Fprintf(&sb, "- %s: %s (%s%%)\n", c.Category, c.Amount.StringFixed(2), c.Percentage.StringFixed(2))
	}

	sb.WriteString("\nSubscriptions:\n")
	if len(p.Subscriptions) == 0 {
		sb.WriteString("- none\n")
	}
	for _, s := range p.Subscriptions {
		fmt.Fprintf(&sb, "- %s: %s %s (%s)\n", s.Name, s.Amount.StringFixed(2), s.Cycle, s.Category)
	}

	fc := p.Forecast
	sb.WriteString("\nForecast:\n")
	fmt.Fprintf(&sb, "- Status: %s (trend %s)\n", fc.StatusMessage, fc.Trend)
	fmt.Fprintf(&sb, "- Predicted spending by period end: %s\n", fc.PredictedAmount.StringFixed(2))
	fmt.Fprintf(&sb, "- Average daily spend: %s over %d days, %d days remaining\n",
		fc.AvgDaily.StringFixed(2), fc.DaysElapsed, fc.DaysRemaining)
	if fc.AnomalyAlert != nil {
		fmt.Fprintf(&sb, "- Alert: %s\n", *fc.AnomalyAlert)
	}

	return sb.String()
}
