// Package feed parses iCalendar payloads into event records for import.
package feed

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"gitea.jw6.us/james/caltable/internal/store"
)

// ParsedEvent is one VEVENT extracted from an import payload.
type ParsedEvent struct {
	UID            string
	Title          string
	StartsAt       time.Time
	EndsAt         *time.Time
	AllDay         bool
	Location       string
	Description    string
	RepeatInterval string
	ExpiresAt      *time.Time
}

// ParseICS extracts events from an iCalendar stream. VEVENTs without a
// UID or a usable DTSTART are skipped rather than failing the import;
// recurrence rules are recorded but never expanded into occurrences.
func ParseICS(r io.Reader) ([]ParsedEvent, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var events []ParsedEvent
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// ToStoreEvent converts a parsed event into a store record for upsert.
func (p ParsedEvent) ToStoreEvent(calendarID int64) store.Event {
	return store.Event{
		CalendarID:     calendarID,
		UID:            p.UID,
		Title:          p.Title,
		StartsAt:       p.StartsAt,
		EndsAt:         p.EndsAt,
		AllDay:         p.AllDay,
		Location:       p.Location,
		Description:    p.Description,
		RepeatInterval: p.RepeatInterval,
		ExpiresAt:      p.ExpiresAt,
		Status:         store.StatusPublish,
	}
}

func parseVEvent(ve *ical.VEvent) (ParsedEvent, error) {
	var out ParsedEvent

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("missing UID")
	}
	out.UID = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("missing DTSTART: %w", err)
	}
	out.StartsAt = start

	if end, err := ve.GetEndAt(); err == nil {
		out.EndsAt = &end
	}

	out.AllDay = isAllDay(ve)

	if rrule := ve.GetProperty(ical.ComponentPropertyRrule); rrule != nil {
		out.RepeatInterval, out.ExpiresAt = parseRRule(rrule.Value)
	}

	return out, nil
}

// isAllDay checks the DTSTART value form: VALUE=DATE, or a date with no
// time component, marks an all-day event.
func isAllDay(ve *ical.VEvent) bool {
	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return false
	}
	if params := dtStart.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(dtStart.Value, "T")
}

// parseRRule reduces an RRULE to the repeat interval and expiry the
// store carries. Anything beyond FREQ and UNTIL is dropped.
func parseRRule(value string) (interval string, until *time.Time) {
	for _, part := range strings.Split(value, ";") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "FREQ":
			switch strings.ToUpper(strings.TrimSpace(val)) {
			case "DAILY":
				interval = "daily"
			case "WEEKLY":
				interval = "weekly"
			case "MONTHLY":
				interval = "monthly"
			case "YEARLY":
				interval = "yearly"
			}
		case "UNTIL":
			if t, err := parseICSTime(strings.TrimSpace(val)); err == nil {
				until = &t
			}
		}
	}
	return interval, until
}

// parseICSTime handles the basic UTC, local date-time, and date-only
// forms that appear in RRULE UNTIL values.
func parseICSTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}
	return time.ParseInLocation("20060102", v, time.Local)
}
