package planner

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/starford/dagaz/internal/apperr"
)

// DefaultInviteDuration is the block length stamped on exported invites.
const DefaultInviteDuration = 30 * time.Minute

// Draft is a ready-to-send share package for one event. Nothing is sent
// here; the caller hands it to a mail client or automation tool.
type Draft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Summary string `json:"summary"`
	Mailto  string `json:"mailto"`
}

// Exporter converts single events into portable calendar-invite text.
type Exporter struct {
	duration time.Duration
}

// NewExporter creates an Exporter. A non-positive duration falls back to
// DefaultInviteDuration.
func NewExporter(duration time.Duration) Exporter {
	if duration <= 0 {
		duration = DefaultInviteDuration
	}
	return Exporter{duration: duration}
}

// InviteText renders ev as a minimal VCALENDAR/VEVENT block: a
// "title (type)" summary, DTSTART as the UTC instant of the local
// date+time in basic format, and a fixed DURATION.
func (x Exporter) InviteText(ev Event) (string, error) {
	start, err := ev.StartsAt()
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	ve := cal.AddEvent(ev.ID)
	ve.SetSummary(fmt.Sprintf("%s (%s)", ev.Title, ev.Type))
	ve.SetStartAt(start.UTC())
	ve.SetProperty(ics.ComponentProperty(ics.PropertyDuration), icalDuration(x.duration))

	return cal.Serialize(), nil
}

// ShareDraft wraps the invite text and the one-line summary into a
// draft addressed to recipient.
func (x Exporter) ShareDraft(ev Event, recipient string) (Draft, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return Draft{}, apperr.ErrMissingRecipient
	}
	invite, err := x.InviteText(ev)
	if err != nil {
		return Draft{}, err
	}

	subject := "Calendar Invite: " + ev.Title
	body := fmt.Sprintf(
		"Hello,\n\nHere is the calendar invite for your %s event. "+
			"Copy the iCal content below or import it into your calendar.\n\n----\n\n%s\n\nQuick summary: %s\n",
		ev.Type, invite, ev.Summary())

	return Draft{
		To:      recipient,
		Subject: subject,
		Body:    body,
		Summary: ev.Summary(),
		Mailto: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			recipient, url.QueryEscape(subject), url.QueryEscape(body)),
	}, nil
}

// icalDuration renders a duration in the RFC 5545 form used on the
// DURATION property, e.g. "PT30M".
func icalDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes%60 == 0 {
		return fmt.Sprintf("PT%dH", minutes/60)
	}
	return fmt.Sprintf("PT%dM", minutes)
}
