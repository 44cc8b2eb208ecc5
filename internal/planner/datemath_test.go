package planner

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestISODate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.March, 4), "2024-03-04"},
		{date(2024, time.January, 5), "2024-01-05"},
		{date(1999, time.December, 31), "1999-12-31"},
		{time.Date(2024, time.March, 4, 23, 59, 0, 0, time.Local), "2024-03-04"},
	}
	for _, tt := range tests {
		if got := ISODate(tt.in); got != tt.want {
			t.Errorf("ISODate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 4, 0, 1, 0, 0, time.Local)
	b := time.Date(2024, time.March, 4, 23, 59, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("same calendar day should match regardless of clock")
	}
	if SameDay(a, date(2024, time.March, 5)) {
		t.Error("different days should not match")
	}
	if SameDay(a, date(2025, time.March, 4)) {
		t.Error("different years should not match")
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		// 2024-03-03 is a Sunday.
		{date(2024, time.March, 4), date(2024, time.March, 3)},  // Monday
		{date(2024, time.March, 3), date(2024, time.March, 3)},  // Sunday stays
		{date(2024, time.March, 9), date(2024, time.March, 3)},  // Saturday
		{date(2024, time.March, 2), date(2024, time.February, 25)}, // crosses month
	}
	for _, tt := range tests {
		got := StartOfWeek(tt.in)
		if !got.Equal(tt.want) {
			t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("StartOfWeek(%v).Weekday() = %v, want Sunday", tt.in, got.Weekday())
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Errorf("StartOfWeek(%v) clock not zeroed: %v", tt.in, got)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap
		{2023, time.February, 28},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	got := AddDays(date(2024, time.February, 28), 2)
	if !SameDay(got, date(2024, time.March, 1)) {
		t.Errorf("Feb 28 + 2 days (leap) = %v, want Mar 1", got)
	}
	got = AddDays(date(2024, time.March, 4), -7)
	if !SameDay(got, date(2024, time.February, 26)) {
		t.Errorf("Mar 4 - 7 days = %v, want Feb 26", got)
	}
}

func TestAddMonthsClampsToTargetMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{date(2024, time.January, 15), 1, date(2024, time.February, 15)},
		{date(2024, time.October, 31), 2, date(2024, time.December, 31)},
		{date(2024, time.May, 10), 12, date(2025, time.May, 10)},
	}
	for _, tt := range tests {
		got := AddMonths(tt.in, tt.n)
		if !SameDay(got, tt.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestAddMonthsKeepsClock(t *testing.T) {
	in := time.Date(2024, time.January, 31, 14, 30, 5, 0, time.Local)
	got := AddMonths(in, 1)
	if got.Hour() != 14 || got.Minute() != 30 || got.Second() != 5 {
		t.Errorf("clock not preserved: %v", got)
	}
}
