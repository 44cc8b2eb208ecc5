package planner

import "time"

// Pure calendar-date helpers. All functions read the wall-clock fields of
// their arguments, so results stay in the argument's location.

// ISODate formats t as zero-padded "YYYY-MM-DD" using local calendar
// fields, not UTC.
func ISODate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns midnight of the most recent Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// DaysInMonth returns the number of days in the given month, accounting
// for leap years. Day 0 of the next month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddDays advances t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths advances t by n months, clamping the day to the last valid
// day of the target month. Jan 31 + 1 month is Feb 28 (or 29), never a
// roll-over into March.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	day := t.Day()
	if max := DaysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), day, hh, mm, ss, t.Nanosecond(), t.Location())
}
