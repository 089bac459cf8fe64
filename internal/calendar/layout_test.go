package calendar

import (
	"testing"
	"time"
)

func cellByIndex(t *testing.T, cells []Cell, lane Lane, index int) Cell {
	t.Helper()
	for _, c := range cells {
		if c.Lane == lane && c.Index == index {
			return c
		}
	}
	t.Fatalf("no cell with lane %s index %d", lane, index)
	return Cell{}
}

func TestBuildWeekPlacesSingleHourEvent(t *testing.T) {
	events := []Event{
		{
			ID:       1,
			Title:    "Design review",
			StartsAt: at(2024, time.June, 11, 14, 0),
			EndsAt:   at(2024, time.June, 11, 15, 0),
		},
	}

	layout := Build(Options{
		Mode: ModeWeek,
		Year: 2024, Month: 6, Day: 12,
		Now: at(2024, time.June, 12, 8, 0),
	}, events)

	// Tuesday 14:00 is hour 14, column 2: index 100.
	got := cellByIndex(t, layout.Cells, LaneItems, 100)
	if len(got.Events) != 1 || got.Events[0].ID != 1 {
		t.Errorf("cell 100 events = %+v, want event 1", got.Events)
	}

	// The on-the-hour end is exclusive, so hour 15 stays empty.
	if next := cellByIndex(t, layout.Cells, LaneItems, 107); len(next.Events) != 0 {
		t.Errorf("cell 107 holds %d events, want none", len(next.Events))
	}

	if len(layout.Pointers) != 1 {
		t.Fatalf("pointers = %d, want 1", len(layout.Pointers))
	}
	if layout.Pointers[0].AnchorID != "1-100" {
		t.Errorf("AnchorID = %q, want %q", layout.Pointers[0].AnchorID, "1-100")
	}
}

func TestBuildMonthEndToEnd(t *testing.T) {
	events := []Event{
		{ID: 1, Title: "Standup", StartsAt: at(2024, time.June, 11, 9, 0), EndsAt: at(2024, time.June, 11, 9, 15)},
		{ID: 2, Title: "Offsite", StartsAt: at(2024, time.June, 10, 9, 0), EndsAt: at(2024, time.June, 12, 17, 0)},
		{ID: 3, Title: "No start", EndsAt: at(2024, time.June, 20, 9, 0)},
		{ID: 4, Title: "Elsewhere", StartsAt: at(2024, time.August, 1, 9, 0)},
	}

	layout := Build(Options{
		Mode: ModeMonth,
		Year: 2024, Month: 6, Day: 1,
		Now: at(2024, time.June, 11, 12, 0),
	}, events)

	// June 11 sits at index 11 + 6 - 1 = 16 and holds the multi-day
	// event first, supply order preserved.
	day11 := cellByIndex(t, layout.Cells, LaneItems, 16)
	if len(day11.Events) != 2 {
		t.Fatalf("June 11 holds %d events, want 2", len(day11.Events))
	}
	if day11.Events[0].ID != 1 || day11.Events[1].ID != 2 {
		t.Errorf("June 11 order = %d, %d", day11.Events[0].ID, day11.Events[1].ID)
	}
	if !day11.IsToday {
		t.Error("June 11 not marked today")
	}

	// The span contributes one pointer per touched day plus one for the
	// standup; the startless and out-of-view events contribute nothing.
	if len(layout.Pointers) != 4 {
		t.Errorf("pointers = %d, want 4", len(layout.Pointers))
	}

	if layout.Nav.NextSmall != (Date{2024, time.July, 1}) {
		t.Errorf("NextSmall = %+v", layout.Nav.NextSmall)
	}
	if layout.Nav.PrevSmall != (Date{2024, time.May, 1}) {
		t.Errorf("PrevSmall = %+v", layout.Nav.PrevSmall)
	}
}

func TestBuildUnknownModeFallsBackToMonth(t *testing.T) {
	layout := Build(Options{
		Mode: ParseMode("quarter"),
		Year: 2024, Month: 6, Day: 1,
		Now: at(2024, time.June, 11, 12, 0),
	}, nil)

	if layout.Boundary.Mode != ModeMonth {
		t.Errorf("mode = %s, want month", layout.Boundary.Mode)
	}
	if len(layout.Cells) != 42 {
		t.Errorf("cells = %d, want the June 2024 month shape", len(layout.Cells))
	}
}

func TestBuildHonorsMaxPerCell(t *testing.T) {
	var events []Event
	for id := int64(1); id <= 6; id++ {
		events = append(events, Event{
			ID:       id,
			StartsAt: at(2024, time.June, 11, 9, 0),
			EndsAt:   at(2024, time.June, 11, 10, 30),
		})
	}

	layout := Build(Options{
		Mode: ModeMonth,
		Year: 2024, Month: 6, Day: 1,
		MaxPerCell: 2,
		Now:        at(2024, time.June, 1, 0, 0),
	}, events)

	day11 := cellByIndex(t, layout.Cells, LaneItems, 16)
	if len(day11.Events) != 2 {
		t.Errorf("cell holds %d events, want 2", len(day11.Events))
	}
	if len(layout.Pointers) != 2 {
		t.Errorf("pointers = %d, want only the kept assignments", len(layout.Pointers))
	}
}

func TestBuildWeekLaneSeparation(t *testing.T) {
	events := []Event{
		{ID: 1, Title: "Holiday", StartsAt: at(2024, time.June, 12, 0, 0), AllDay: true},
		{ID: 2, Title: "Conference", StartsAt: at(2024, time.June, 10, 9, 0), EndsAt: at(2024, time.June, 12, 17, 0)},
		{ID: 3, Title: "1:1", StartsAt: at(2024, time.June, 12, 10, 0), EndsAt: at(2024, time.June, 12, 10, 30)},
	}

	layout := Build(Options{
		Mode: ModeWeek,
		Year: 2024, Month: 6, Day: 12,
		Now: at(2024, time.June, 12, 8, 0),
	}, events)

	if c := cellByIndex(t, layout.Cells, LaneAllDay, 3); len(c.Events) != 1 || c.Events[0].ID != 1 {
		t.Errorf("all-day wednesday = %+v", c.Events)
	}
	if c := cellByIndex(t, layout.Cells, LaneMultiDay, 3); len(c.Events) != 1 || c.Events[0].ID != 2 {
		t.Errorf("multi-day wednesday = %+v", c.Events)
	}
	if c := cellByIndex(t, layout.Cells, LaneItems, 10*7+3); len(c.Events) != 1 || c.Events[0].ID != 3 {
		t.Errorf("timed 10:00 wednesday = %+v", c.Events)
	}
}
