package planner

import (
	"sort"
	"time"
)

// DefaultSummaryLimit is how many events a week cell shows before
// collapsing the rest into an overflow count.
const DefaultSummaryLimit = 3

// DayView is the data behind the single-day view.
type DayView struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// WeekCell is one day column in the week view. Events holds at most the
// summary limit, in time order; Overflow counts the rest.
type WeekCell struct {
	Date     string  `json:"date"`
	Day      int     `json:"day"`
	Events   []Event `json:"events"`
	Overflow int     `json:"overflow"`
	Today    bool    `json:"today"`
}

// MonthCell is one cell in the month grid. Leading blank cells (before
// the 1st) have Day == 0 and no date. Types holds the distinct category
// keys present that day, in first-appearance order, for dot rendering.
type MonthCell struct {
	Date  string   `json:"date,omitempty"`
	Day   int      `json:"day"`
	Types []string `json:"types,omitempty"`
	Today bool     `json:"today"`
}

// Dashboard is the data behind the "today" landing view.
type Dashboard struct {
	Date   string  `json:"date"`
	Clock  string  `json:"clock"`
	Events []Event `json:"events"`
}

// Projector derives view data from an event list and a cursor date.
// It never mutates the list and keeps no cached state: every call
// recomputes from scratch.
type Projector struct {
	summaryLimit int
}

// NewProjector creates a Projector. A non-positive summaryLimit falls
// back to DefaultSummaryLimit.
func NewProjector(summaryLimit int) Projector {
	if summaryLimit <= 0 {
		summaryLimit = DefaultSummaryLimit
	}
	return Projector{summaryLimit: summaryLimit}
}

// EventsOnDate returns the events whose date matches date's calendar
// day, ascending by time. Events with equal times keep their relative
// list order.
func EventsOnDate(list []Event, date time.Time) []Event {
	target := ISODate(date)
	out := make([]Event, 0)
	for _, ev := range list {
		if ev.Date == target {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// Day computes the single-day view for the cursor date.
func (p Projector) Day(list []Event, cursor time.Time) DayView {
	return DayView{
		Date:   ISODate(cursor),
		Events: EventsOnDate(list, cursor),
	}
}

// Week computes exactly seven cells starting at the Sunday of the
// cursor's week. today drives the per-cell highlight flag.
func (p Projector) Week(list []Event, cursor, today time.Time) []WeekCell {
	start := StartOfWeek(cursor)
	cells := make([]WeekCell, 0, 7)
	for i := 0; i < 7; i++ {
		date := AddDays(start, i)
		events := EventsOnDate(list, date)
		overflow := 0
		if len(events) > p.summaryLimit {
			overflow = len(events) - p.summaryLimit
			events = events[:p.summaryLimit]
		}
		cells = append(cells, WeekCell{
			Date:     ISODate(date),
			Day:      date.Day(),
			Events:   events,
			Overflow: overflow,
			Today:    SameDay(date, today),
		})
	}
	return cells
}

// Month computes the month grid for the cursor's month: leading blank
// cells up to the weekday of the 1st, then one cell per day carrying the
// distinct category keys present. No trailing padding; callers may pad
// to a full grid if they want one.
func (p Projector) Month(list []Event, cursor, today time.Time) []MonthCell {
	year, month := cursor.Year(), cursor.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, cursor.Location())
	days := DaysInMonth(year, month)

	cells := make([]MonthCell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, MonthCell{})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, cursor.Location())
		cells = append(cells, MonthCell{
			Date:  ISODate(date),
			Day:   day,
			Types: distinctTypeKeys(EventsOnDate(list, date)),
			Today: SameDay(date, today),
		})
	}
	return cells
}

// Today computes the dashboard for the real current date.
func (p Projector) Today(list []Event, now time.Time) Dashboard {
	return Dashboard{
		Date:   now.Format("Monday, January 2, 2006"),
		Clock:  now.Format(TimeLayout),
		Events: EventsOnDate(list, now),
	}
}

func distinctTypeKeys(events []Event) []string {
	seen := make(map[string]struct{}, len(events))
	keys := make([]string, 0, len(events))
	for _, ev := range events {
		k := ev.TypeKey()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
