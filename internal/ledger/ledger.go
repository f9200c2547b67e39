// Package ledger merges recorded expenses with computed subscription charges
// into one timeline and summarises it.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
	"budgetwise/internal/recurrence"
)

// DefaultSubscriptionCategory is used for subscriptions without a category.
const DefaultSubscriptionCategory = "Subscription"

// Kind tags where a ledger entry came from.
type Kind string

const (
	KindReal    Kind = "real"
	KindVirtual Kind = "virtual"
)

// Entry is one ledger row. Real entries carry ExpenseID; virtual entries
// carry SubscriptionID and OccurrenceDate and are never stored.
type Entry struct {
	Kind           Kind            `json:"kind"`
	ExpenseID      string          `json:"expenseId,omitempty"`
	SubscriptionID string          `json:"subscriptionId,omitempty"`
	OccurrenceDate *dates.Date     `json:"occurrenceDate,omitempty"`
	Category       string          `json:"category"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Date           dates.Date      `json:"date"`
	Description    string          `json:"description,omitempty"`
	Mood           string          `json:"mood,omitempty"`
	IsHighValue    bool            `json:"isHighValue"`
}

// FromExpense wraps a recorded expense.
func FromExpense(e models.Expense) Entry {
	return Entry{
		Kind:        KindReal,
		ExpenseID:   e.ID,
		Category:    e.Category,
		Name:        e.Name,
		Amount:      e.Amount,
		Date:        dates.NewDate(e.Date),
		Description: e.Description,
		Mood:        e.Mood,
		IsHighValue: e.IsHighValue,
	}
}

// FromEvent wraps a computed subscription charge.
func FromEvent(ev recurrence.Event) Entry {
	category := ev.Category
	if category == "" {
		category = DefaultSubscriptionCategory
	}
	occurred := dates.NewDate(ev.Date)
	return Entry{
		Kind:           KindVirtual,
		SubscriptionID: ev.SubscriptionID,
		OccurrenceDate: &occurred,
		Category:       category,
		Name:           ev.Label,
		Amount:         ev.Amount,
		Date:           occurred,
	}
}

// Virtual expands every subscription over [start, end].
func Virtual(subscriptions []models.Subscription, start, end time.Time) []Entry {
	var entries []Entry
	for _, sub := range subscriptions {
		for ev := range recurrence.Expand(sub, start, end) {
			entries = append(entries, FromEvent(ev))
		}
	}
	sortEntries(entries)
	return entries
}

// Entries returns the expenses dated in [start, end] together with the
// subscription charges of the same window, ordered by date. On the same day
// real entries come first.
func Entries(expenses []models.Expense, subscriptions []models.Subscription, start, end time.Time) []Entry {
	inWindow := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if dates.Within(e.Date, start, end) {
			inWindow = append(inWindow, e)
		}
	}
	return Combine(inWindow, subscriptions, start, end)
}

// Combine is Entries without the date filter on expenses: every expense
// given is kept.
func Combine(expenses []models.Expense, subscriptions []models.Subscription, start, end time.Time) []Entry {
	entries := make([]Entry, 0, len(expenses))
	for _, e := range expenses {
		entries = append(entries, FromExpense(e))
	}
	entries = append(entries, Virtual(subscriptions, start, end)...)
	sortEntries(entries)
	return entries
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.Before(b.Date.Time)
		}
		return a.Kind == KindReal && b.Kind == KindVirtual
	})
}

// DayTotal is the amount spent on one calendar day.
type DayTotal struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary is the aggregate of a ledger window.
type Summary struct {
	TotalSpent decimal.Decimal            `json:"totalSpent"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	ByDay      []DayTotal                 `json:"byDay"`
}

// Aggregate totals the unified ledger of [start, end] by category and day.
// It has no side effects; equal inputs give equal summaries.
func Aggregate(expenses []models.Expense, subscriptions []models.Subscription, start, end time.Time) Summary {
	return Summarize(Entries(expenses, subscriptions, start, end))
}

// Summarize totals already merged entries.
func Summarize(entries []Entry) Summary {
	summary := Summary{
		TotalSpent: decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
		ByDay:      []DayTotal{},
	}
	byDay := make(map[string]decimal.Decimal)
	for _, e := range entries {
		summary.TotalSpent = summary.TotalSpent.Add(e.Amount)
		summary.ByCategory[e.Category] = summary.ByCategory[e.Category].Add(e.Amount)
		key := dates.ISO(e.Date.Time)
		byDay[key] = byDay[key].Add(e.Amount)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		summary.ByDay = append(summary.ByDay, DayTotal{Date: d, Amount: byDay[d]})
	}
	return summary
}

// CategoryShare is one category's slice of the total.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryShares lists categories by amount, largest first, with their
// percentage of the total rounded to two places.
func CategoryShares(summary Summary) []CategoryShare {
	shares := make([]CategoryShare, 0, len(summary.ByCategory))
	for category, amount := range summary.ByCategory {
		pct := decimal.Zero
		if summary.TotalSpent.IsPositive() {
			pct = amount.Div(summary.TotalSpent).Mul(decimal.NewFromInt(100)).Round(2)
		}
		shares = append(shares, CategoryShare{Category: category, Amount: amount, Percentage: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if c := shares[i].Amount.Cmp(shares[j].Amount); c != 0 {
			return c > 0
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

// Archive flattens entries into the history row shape.
func Archive(entries []Entry) []models.ArchivedEntry {
	out := make([]models.ArchivedEntry, 0, len(entries))
	for _, e := range entries {
		source := e.ExpenseID
		if e.Kind == KindVirtual {
			source = e.SubscriptionID
		}
		out = append(out, models.ArchivedEntry{
			Kind:        string(e.Kind),
			SourceID:    source,
			Category:    e.Category,
			Name:        e.Name,
			Amount:      e.Amount,
			Date:        e.Date.Time,
			Description: e.Description,
		})
	}
	return out
}
