// Package planner implements the event data model, calendar view
// computation, and invite export for the day planner.
package planner

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/starford/dagaz/internal/apperr"
)

// Layouts for the persisted date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRx = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Event is a single scheduled entry. Events are immutable once created:
// mutations are modelled as delete + add.
//
// Time uses zero-padded 24-hour "HH:MM" so that lexicographic comparison
// orders events chronologically within a day; validation enforces this
// contract at the boundary.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// Validate checks the event fields against the persisted format.
func (e Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Type, validation.Required),
		validation.Field(&e.Date, validation.Required, validation.Match(dateRx), validation.Date(DateLayout)),
		validation.Field(&e.Time, validation.Required, validation.Match(timeRx), validation.Date(TimeLayout)),
	)
}

// StartsAt combines Date and Time into a point in local time.
func (e Event) StartsAt() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", apperr.ErrInvalidEventTime, e.Date, e.Time)
	}
	return t, nil
}

// TypeKey returns the category label with whitespace collapsed to
// hyphens, safe for use as a grouping or CSS class key.
func (e Event) TypeKey() string {
	return strings.Join(strings.Fields(e.Type), "-")
}

// Summary returns the one-line human-readable form used in share drafts.
func (e Event) Summary() string {
	return fmt.Sprintf("%s at %s on %s", e.Title, e.Time, e.Date)
}

func newID() string {
	return uuid.NewString()
}
