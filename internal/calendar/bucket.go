package calendar

import (
	"fmt"
	"time"
)

// DefaultMaxPerCell bounds how many events one cell holds when the
// caller supplies no per-user preference.
const DefaultMaxPerCell = 10

// Pointer is the tooltip payload for one event's appearance in one cell.
// AnchorID is unique per (event, cell) pair so the renderer can attach
// the summary to the matching grid entry.
type Pointer struct {
	AnchorID string `json:"anchor_id"`
	Title    string `json:"title"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Location string `json:"location,omitempty"`
	AllDay   bool   `json:"all_day"`
}

// pointerTimeFormat mirrors the host's "time on date" tooltip wording.
const pointerTimeFormat = "3:04 pm on January 2, 2006"

// Buckets holds per-lane, per-cell event lists for one view. Insertion
// order within a cell is the caller's supply order; a cell that already
// holds max events silently drops further arrivals. The same event may
// still land in every other cell of its span.
type Buckets struct {
	max      int
	lanes    map[Lane]map[int][]Event
	pointers []Pointer
}

// NewBuckets returns empty buckets enforcing the given per-cell maximum.
// Non-positive maximums fall back to DefaultMaxPerCell.
func NewBuckets(maxPerCell int) *Buckets {
	if maxPerCell <= 0 {
		maxPerCell = DefaultMaxPerCell
	}
	return &Buckets{
		max: maxPerCell,
		lanes: map[Lane]map[int][]Event{
			LaneItems:    {},
			LaneAllDay:   {},
			LaneMultiDay: {},
		},
	}
}

// assign upserts the event into one cell of a lane. Assignment is
// idempotent per event ID, and a full cell drops the event without
// signalling the caller: the grid's row height stays bounded and the
// omission is deliberate.
func (b *Buckets) assign(lane Lane, cell int, ev Event) {
	cells, ok := b.lanes[lane]
	if !ok {
		return
	}

	list := cells[cell]
	for _, held := range list {
		if held.ID == ev.ID {
			return
		}
	}
	if len(list) >= b.max {
		return
	}

	cells[cell] = append(list, ev)
	b.pointers = append(b.pointers, pointerFor(ev, cell))
}

// Events returns the events held in one cell of a lane, in insertion
// order. The returned slice is shared; callers must not modify it.
func (b *Buckets) Events(lane Lane, cell int) []Event {
	return b.lanes[lane][cell]
}

// Pointers returns every tooltip summary emitted so far, one per
// (event, cell) assignment.
func (b *Buckets) Pointers() []Pointer {
	return b.pointers
}

func pointerFor(ev Event, cell int) Pointer {
	p := Pointer{
		AnchorID: fmt.Sprintf("%d-%d", ev.ID, cell),
		Title:    ev.DisplayTitle(),
		Location: ev.Location,
		AllDay:   ev.AllDay,
	}

	// All-day tooltips show no clock times.
	if !ev.AllDay {
		p.Start = formatPointerTime(ev.StartsAt)
		p.End = formatPointerTime(ev.EndsAt)
	}

	return p
}

func formatPointerTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(pointerTimeFormat)
}
