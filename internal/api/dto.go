package api

import "github.com/starford/dagaz/internal/planner"

// CreateEventRequest is the request body for adding an event.
type CreateEventRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// ShareEventRequest is the optional request body for sharing an event.
// An empty To falls back to the stored work email.
type ShareEventRequest struct {
	To string `json:"to"`
}

// EventListResponse wraps the full event list.
type EventListResponse struct {
	Events []planner.Event `json:"events"`
	Total  int             `json:"total"`
}

// WeekViewResponse wraps the seven week cells.
type WeekViewResponse struct {
	Start string             `json:"start"`
	Cells []planner.WeekCell `json:"cells"`
}

// MonthViewResponse wraps the month grid.
type MonthViewResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Cells []planner.MonthCell `json:"cells"`
}

// EmailResponse carries the work email scalar.
type EmailResponse struct {
	Email string `json:"email"`
}
