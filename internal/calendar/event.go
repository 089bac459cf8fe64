package calendar

import (
	"math"
	"time"
)

// Event is the externally supplied record the layout engine places onto
// a grid. The engine never mutates or retains events; RepeatInterval and
// ExpiresAt are carried for the caller's benefit but are not expanded
// into additional occurrences here.
type Event struct {
	ID       int64
	Title    string
	StartsAt time.Time
	EndsAt   time.Time
	AllDay   bool
	Location string

	RepeatInterval string
	ExpiresAt      time.Time
}

// noTitle is rendered in place of an empty event title.
const noTitle = "(No title)"

// DisplayTitle returns the event title, or a placeholder when empty.
func (e Event) DisplayTitle() string {
	if e.Title == "" {
		return noTitle
	}
	return e.Title
}

// item is a normalized event ready for cell mapping.
type item struct {
	Event
	SpanDays int
}

// normalize derives the end timestamp and span-day count for an event.
// Events without a start are discarded (ok == false); an absent end
// defaults to the start, making the event a point in time.
func normalize(ev Event) (it item, ok bool) {
	if ev.StartsAt.IsZero() {
		return item{}, false
	}
	if ev.EndsAt.IsZero() {
		ev.EndsAt = ev.StartsAt
	}

	// Span is counted on dates only: a 23:00-01:00 event still touches
	// two calendar days, and the time of day never changes the count.
	start := midnight(ev.StartsAt)
	end := midnight(ev.EndsAt)
	diff := math.Abs(end.Sub(start).Seconds())

	return item{
		Event:    ev,
		SpanDays: int(math.Ceil(diff/(24*60*60))) + 1,
	}, true
}

// midnight truncates a timestamp to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
