// Package dates holds the calendar-day helpers shared by the recurrence,
// ledger and forecast packages. All comparisons are made at day granularity
// in the location of the first argument.
package dates

import (
	"math"
	"time"
)

// Day is one calendar day.
const Day = 24 * time.Hour

// ISOLayout is the wire format of calendar dates.
const ISOLayout = "2006-01-02"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextMidnight returns the first instant of the day after t.
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Clamped builds a date, pulling day back to the last day of the month when
// the month is too short (31 → 28/29/30).
func Clamped(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// AddMonths advances t by n months keeping its day of month where possible.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	return Clamped(first.Year(), first.Month(), t.Day(), t.Location())
}

// CeilDays returns (to - from) in days, rounded up.
func CeilDays(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// Civil keeps t's calendar day and wall clock but places them in UTC, the
// location every stored date uses. A 21:00 reading in UTC-5 stays on the
// same day instead of moving to the next UTC day.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Now is the server's current wall clock as a Civil time.
func Now() time.Time {
	return Civil(time.Now())
}

// EffectiveEnd is min(today, periodEnd) at day granularity.
func EffectiveEnd(today, periodEnd time.Time) time.Time {
	t := StartOfDay(today)
	e := StartOfDay(periodEnd)
	if t.Before(e) {
		return t
	}
	return e
}

// Within reports whether t falls on a day in [start, end].
func Within(t, start, end time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(StartOfDay(start)) && !d.After(StartOfDay(end))
}

// ClampToPeriod pulls t into [start, end]. Times on the end day are kept.
func ClampToPeriod(t, start, end time.Time) time.Time {
	if t.Before(start) {
		return start
	}
	if StartOfDay(t).After(StartOfDay(end)) {
		return end
	}
	return t
}

// ISO formats t as YYYY-MM-DD.
func ISO(t time.Time) string {
	return t.Format(ISOLayout)
}
