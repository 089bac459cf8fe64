package calendar

import (
	"math"
	"time"
)

// placement is the lane and the contiguous cell range one event occupies
// within a view.
type placement struct {
	lane  Lane
	cells []int
}

// mapToCells computes the grid cells an event belongs to. Days that fall
// outside the view boundary are clipped, never wrapped or given negative
// indices; an event entirely outside the view produces no cells.
func mapToCells(b Boundary, it item) placement {
	switch b.Mode {
	case ModeWeek:
		return mapWeek(b, it)
	case ModeDay:
		return mapDay(b, it)
	default:
		return mapMonth(b, it)
	}
}

// laneFor picks the summary lane for hour-granular views. Month cells
// are day-granular, so the month view keeps every event in the items
// lane regardless of duration.
func laneFor(it item) Lane {
	switch {
	case it.AllDay:
		return LaneAllDay
	case it.SpanDays > 1:
		return LaneMultiDay
	default:
		return LaneItems
	}
}

// mapMonth indexes one cell per calendar day the event touches, using
// index = dayOfMonth + startWeekday - 1 so indices line up with the
// padded first row of the rendered grid.
func mapMonth(b Boundary, it item) placement {
	p := placement{lane: LaneItems}

	for t := midnight(it.StartsAt); !t.After(midnight(it.EndsAt)); t = t.AddDate(0, 0, 1) {
		if !b.Contains(t) {
			continue
		}
		p.cells = append(p.cells, t.Day()+int(b.StartWeekday)-1)
	}

	return p
}

func mapWeek(b Boundary, it item) placement {
	lane := laneFor(it)

	// All-day and multi-day events occupy the summary lanes, one cell
	// per spanned weekday column.
	if lane != LaneItems {
		return placement{lane: lane, cells: spanOffsets(b, it, 6)}
	}

	// Timed single-day events: cells advance by 7 per hour, keeping the
	// weekday column fixed. An end that would land on another day is
	// clipped to the start day.
	offset := daysBetween(b.Start, midnight(it.StartsAt))
	if offset < 0 || offset > 6 {
		return placement{lane: lane}
	}

	startHour, endHour := hourRange(it)
	p := placement{lane: lane}
	for cell := startHour*7 + offset; cell <= endHour*7+offset; cell += 7 {
		p.cells = append(p.cells, cell)
	}
	return p
}

func mapDay(b Boundary, it item) placement {
	lane := laneFor(it)

	// Summary lanes collapse to a single column in day view.
	if lane != LaneItems {
		return placement{lane: lane, cells: spanOffsets(b, it, 0)}
	}

	if !midnight(it.StartsAt).Equal(b.Start) {
		return placement{lane: lane}
	}

	startHour, endHour := hourRange(it)
	p := placement{lane: lane}
	for cell := startHour; cell <= endHour; cell++ {
		p.cells = append(p.cells, cell)
	}
	return p
}

// spanOffsets returns the day-offset cells (0..maxOffset) covered by the
// event's span, clipped to the view's columns.
func spanOffsets(b Boundary, it item, maxOffset int) []int {
	var cells []int
	for t := midnight(it.StartsAt); !t.After(midnight(it.EndsAt)); t = t.AddDate(0, 0, 1) {
		off := daysBetween(b.Start, t)
		if off < 0 || off > maxOffset {
			continue
		}
		cells = append(cells, off)
	}
	return cells
}

// hourRange returns the inclusive hour-of-day range of a timed event,
// clipped to the start day. An end that lands exactly on an hour
// boundary is exclusive: a 14:00-15:00 event occupies only hour 14.
func hourRange(it item) (start, end int) {
	start = it.StartsAt.Hour()
	end = it.EndsAt.Hour()

	onTheHour := it.EndsAt.Minute() == 0 && it.EndsAt.Second() == 0
	if onTheHour && it.EndsAt.After(it.StartsAt) {
		end--
	}
	if end < start || !midnight(it.EndsAt).Equal(midnight(it.StartsAt)) {
		end = start
	}
	return start, end
}

// daysBetween counts whole calendar days from a to b. Both arguments are
// midnight-aligned; rounding absorbs DST-shortened days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
