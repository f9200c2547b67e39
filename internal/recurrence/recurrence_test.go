package recurrence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetwise/internal/dates"
	"budgetwise/internal/models"
)

func day(s string) time.Time { return dates.MustParse(s) }

func subscription(cycle models.SubscriptionCycle, start string, amount int64) models.Subscription {
	return models.Subscription{
		Base:      models.Base{ID: "sub-1"},
		OwnerID:   "owner-1",
		Name:      "Streaming",
		Amount:    decimal.NewFromInt(amount),
		Cycle:     cycle,
		StartDate: day(start),
		Category:  "Entertainment",
	}
}

func eventDates(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, dates.ISO(e.Date))
	}
	return out
}

func TestExpand_Monthly(t *testing.T) {
	sub := subscription(models.CycleMonthly, "2024-01-15", 500)

	events := Collect(sub, day("2024-01-01"), day("2024-04-30"))

	require.Len(t, events, 4)
	assert.Equal(t, []string{"2024-01-15", "2024-02-15", "2024-03-15", "2024-04-15"}, eventDates(events))
	for _, e := range events {
		assert.True(t, e.Amount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, "Entertainment", e.Category)
		assert.Equal(t, "Streaming (Subscription)", e.Label)
		assert.Equal(t, "sub-1", e.SubscriptionID)
	}
}

func TestExpand_MonthlyUsesWindowNotSubscriptionStart(t *testing.T) {
	// Created mid-period; the period still owes its first eligible month.
	sub := subscription(models.CycleMonthly, "2024-03-05", 100)

	events := Collect(sub, day("2024-01-01"), day("2024-02-29"))

	assert.Equal(t, []string{"2024-01-05", "2024-02-05"}, eventDates(events))
}

func TestExpand_MonthlyClampsShortMonths(t *testing.T) {
	sub := subscription(models.CycleMonthly, "2024-01-31", 20)

	events := Collect(sub, day("2024-01-01"), day("2024-04-30"))

	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"}, eventDates(events))
}

func TestExpand_MonthlyPartialWindow(t *testing.T) {
	sub := subscription(models.CycleMonthly, "2024-01-10", 20)

	t.Run("window starts after billing day", func(t *testing.T) {
		events := Collect(sub, day("2024-01-15"), day("2024-02-14"))
		assert.Equal(t, []string{"2024-02-10"}, eventDates(events))
	})

	t.Run("window end is inclusive", func(t *testing.T) {
		events := Collect(sub, day("2024-01-01"), day("2024-01-10"))
		assert.Equal(t, []string{"2024-01-10"}, eventDates(events))
	})

	t.Run("inverted window", func(t *testing.T) {
		assert.Empty(t, Collect(sub, day("2024-02-01"), day("2024-01-01")))
	})
}

func TestExpand_Yearly(t *testing.T) {
	sub := subscription(models.CycleYearly, "2023-06-10", 120)

	t.Run("anniversary inside window", func(t *testing.T) {
		events := Collect(sub, day("2024-06-01"), day("2024-06-30"))
		require.Len(t, events, 1)
		assert.Equal(t, "2024-06-10", dates.ISO(events[0].Date))
		assert.True(t, events[0].Amount.Equal(decimal.NewFromInt(120)))
	})

	t.Run("anniversary outside window", func(t *testing.T) {
		assert.Empty(t, Collect(sub, day("2024-07-01"), day("2024-07-31")))
	})

	t.Run("only windowStart year is considered", func(t *testing.T) {
		assert.Empty(t, Collect(sub, day("2024-07-01"), day("2025-07-31")))
	})
}

func TestExpand_Restartable(t *testing.T) {
	sub := subscription(models.CycleMonthly, "2024-01-15", 500)
	seq := Expand(sub, day("2024-01-01"), day("2024-04-30"))

	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	assert.Equal(t, 4, first)
	assert.Equal(t, first, second)
}

func TestExpand_EarlyBreak(t *testing.T) {
	sub := subscription(models.CycleMonthly, "2024-01-15", 500)

	var seen int
	for range Expand(sub, day("2024-01-01"), day("2024-12-31")) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
