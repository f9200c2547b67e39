// Package recurrence expands subscriptions into the virtual charge events
// they owe inside a date window. Nothing here is persisted.
package recurrence

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
)

// Event is one computed subscription charge.
type Event struct {
	SubscriptionID string
	Date           time.Time
	Amount         decimal.Decimal
	Category       string
	Label          string
}

// Label renders the ledger name of a subscription charge.
func Label(name string) string {
	return name + " (Subscription)"
}

// Expand yields the charges sub owes in [windowStart, windowEnd], day
// inclusive. The sequence is finite and can be ranged over any number of
// times with the same result.
//
// Monthly charges walk the months of the window, not the months since the
// subscription started, and a billing day the month lacks lands on its last
// day. Yearly subscriptions produce at most one charge, on the anniversary in
// windowStart's year.
func Expand(sub models.Subscription, windowStart, windowEnd time.Time) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if dates.StartOfDay(windowEnd).Before(dates.StartOfDay(windowStart)) {
			return
		}
		loc := windowStart.Location()
		day := sub.StartDate.Day()

		switch sub.Cycle {
		case models.CycleMonthly:
			cursor := time.Date(windowStart.Year(), windowStart.Month(), 1, 0, 0, 0, 0, loc)
			last := dates.StartOfDay(windowEnd)
			for !cursor.After(last) {
				candidate := dates.Clamped(cursor.Year(), cursor.Month(), day, loc)
				if dates.Within(candidate, windowStart, windowEnd) {
					if !yield(event(sub, candidate)) {
						return
					}
				}
				cursor = cursor.AddDate(0, 1, 0)
			}
		case models.CycleYearly:
			candidate := dates.Clamped(windowStart.Year(), sub.StartDate.Month(), day, loc)
			if dates.Within(candidate, windowStart, windowEnd) {
				yield(event(sub, candidate))
			}
		}
	}
}

// Collect drains Expand into a slice.
func Collect(sub models.Subscription, windowStart, windowEnd time.Time) []Event {
	var events []Event
	for e := range Expand(sub, windowStart, windowEnd) {
		events = append(events, e)
	}
	return events
}

func event(sub models.Subscription, date time.Time) Event {
	return Event{
		SubscriptionID: sub.ID,
		Date:           date,
		Amount:         sub.Amount,
		Category:       sub.Category,
		Label:          Label(sub.Name),
	}
}
