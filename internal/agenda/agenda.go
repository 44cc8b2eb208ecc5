// Package agenda renders calendar views as aligned plain text for the
// terminal.
package agenda

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/starford/dagaz/internal/planner"
)

const cellWidth = 16

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderDay renders a day view, one event per line.
func RenderDay(v planner.DayView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Date)
	if len(v.Events) == 0 {
		b.WriteString("  no events scheduled\n")
		return b.String()
	}
	for _, ev := range v.Events {
		fmt.Fprintf(&b, "  [%s] %s (%s)\n", ev.Time, ev.Title, ev.Type)
	}
	return b.String()
}

// RenderWeek renders the seven cells as columns. Titles wider than a
// column are truncated with an ellipsis; runewidth keeps CJK and emoji
// titles aligned.
func RenderWeek(cells []planner.WeekCell) string {
	var b strings.Builder

	for i, c := range cells {
		head := dayNames[i%7] + " " + c.Date[5:] // MM-DD
		if c.Today {
			head += "*"
		}
		b.WriteString(runewidth.FillRight(head, cellWidth))
	}
	b.WriteString("\n")

	rows := 0
	for _, c := range cells {
		if n := len(c.Events); n > rows {
			rows = n
		}
	}
	for row := 0; row < rows; row++ {
		for _, c := range cells {
			cell := ""
			if row < len(c.Events) {
				ev := c.Events[row]
				cell = ev.Time + " " + runewidth.Truncate(ev.Title, cellWidth-7, "…")
			}
			b.WriteString(runewidth.FillRight(cell, cellWidth))
		}
		b.WriteString("\n")
	}

	overflow := false
	for _, c := range cells {
		if c.Overflow > 0 {
			overflow = true
			break
		}
	}
	if overflow {
		for _, c := range cells {
			cell := ""
			if c.Overflow > 0 {
				cell = fmt.Sprintf("…%d more", c.Overflow)
			}
			b.WriteString(runewidth.FillRight(cell, cellWidth))
		}
		b.WriteString("\n")
	}

	return b.String()
}
