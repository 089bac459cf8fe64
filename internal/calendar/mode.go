// Package calendar lays events out onto month, week, and day grids.
//
// The package is a pure layout engine: callers supply a view anchor, a
// flat list of events already filtered to (roughly) the view range, and
// the current time; the package computes the view boundary, assigns each
// event to the grid cells it occupies, and walks the cells in display
// order. No state survives between calls.
package calendar

import "strings"

// Mode selects the granularity of a calendar view.
type Mode string

const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
	ModeDay   Mode = "day"
)

// ParseMode maps a mode token to a Mode, falling back to month for
// anything it does not recognize.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week":
		return ModeWeek
	case "day":
		return ModeDay
	default:
		return ModeMonth
	}
}

// Lane partitions events by how they occupy time within a cell. Timed
// single-day events go to LaneItems; hour-granular views keep all-day and
// multi-day events in their own summary lanes.
type Lane string

const (
	LaneItems    Lane = "items"
	LaneAllDay   Lane = "all_day_items"
	LaneMultiDay Lane = "multi_day_items"
)
