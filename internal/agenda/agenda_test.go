package agenda

import (
	"strings"
	"testing"
	"time"

	"github.com/starford/dagaz/internal/planner"
)

func ev(title, date, tm string) planner.Event {
	return planner.Event{ID: title, Title: title, Type: "Work", Date: date, Time: tm}
}

func TestRenderDay(t *testing.T) {
	p := planner.NewProjector(3)
	cursor := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)

	out := RenderDay(p.Day(nil, cursor))
	if !strings.Contains(out, "2024-03-04") || !strings.Contains(out, "no events scheduled") {
		t.Errorf("empty day:\n%s", out)
	}

	list := []planner.Event{
		ev("Review", "2024-03-04", "10:00"),
		ev("Standup", "2024-03-04", "09:00"),
	}
	out = RenderDay(p.Day(list, cursor))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "[09:00] Standup") || !strings.Contains(lines[2], "[10:00] Review") {
		t.Errorf("events out of order:\n%s", out)
	}
}

func TestRenderWeek(t *testing.T) {
	p := planner.NewProjector(1)
	cursor := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	today := cursor
	list := []planner.Event{
		ev("Standup", "2024-03-04", "09:00"),
		ev("Review", "2024-03-04", "10:00"),
	}

	out := RenderWeek(p.Week(list, cursor, today))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, one event row (limit 1), one overflow row.
	if len(lines) != 3 {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Sun 03-03") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[0], "Mon 03-04*") {
		t.Errorf("today marker missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "09:00 Standup") {
		t.Errorf("event row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "…1 more") {
		t.Errorf("overflow row = %q", lines[2])
	}
}

func TestRenderWeekAlignment(t *testing.T) {
	p := planner.NewProjector(3)
	cursor := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	list := []planner.Event{
		ev("日本語のタイトルがとても長い", "2024-03-03", "09:00"),
	}

	out := RenderWeek(p.Week(list, cursor, cursor))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "…") {
		t.Errorf("wide title should be truncated with ellipsis: %q", lines[1])
	}
}
