package calendar

import (
	"testing"
	"time"
)

func TestBucketCapacity(t *testing.T) {
	bk := NewBuckets(2)

	for id := int64(1); id <= 5; id++ {
		bk.assign(LaneItems, 16, Event{ID: id, Title: "ev", StartsAt: at(2024, time.June, 11, 9, 0)})
	}

	held := bk.Events(LaneItems, 16)
	if len(held) != 2 {
		t.Fatalf("cell holds %d events, want 2", len(held))
	}
	if held[0].ID != 1 || held[1].ID != 2 {
		t.Errorf("cell kept IDs %d, %d; want the first two supplied", held[0].ID, held[1].ID)
	}
	if got := len(bk.Pointers()); got != 2 {
		t.Errorf("pointers = %d, want one per kept assignment", got)
	}
}

func TestBucketDefaultMax(t *testing.T) {
	for _, max := range []int{0, -3} {
		bk := NewBuckets(max)
		for id := int64(1); id <= DefaultMaxPerCell+4; id++ {
			bk.assign(LaneItems, 0, Event{ID: id, StartsAt: at(2024, time.June, 11, 9, 0)})
		}
		if got := len(bk.Events(LaneItems, 0)); got != DefaultMaxPerCell {
			t.Errorf("NewBuckets(%d): cell holds %d, want %d", max, got, DefaultMaxPerCell)
		}
	}
}

func TestBucketIdempotentPerEvent(t *testing.T) {
	bk := NewBuckets(5)
	ev := Event{ID: 7, Title: "standup", StartsAt: at(2024, time.June, 11, 9, 0)}

	bk.assign(LaneItems, 3, ev)
	bk.assign(LaneItems, 3, ev)
	bk.assign(LaneItems, 4, ev)

	if got := len(bk.Events(LaneItems, 3)); got != 1 {
		t.Errorf("repeated assignment grew the cell to %d events", got)
	}
	if got := len(bk.Events(LaneItems, 4)); got != 1 {
		t.Errorf("second cell of the span holds %d events, want 1", got)
	}
	if got := len(bk.Pointers()); got != 2 {
		t.Errorf("pointers = %d, want 2", got)
	}
}

func TestBucketLanesAreIndependent(t *testing.T) {
	bk := NewBuckets(1)

	bk.assign(LaneItems, 0, Event{ID: 1, StartsAt: at(2024, time.June, 11, 9, 0)})
	bk.assign(LaneAllDay, 0, Event{ID: 2, StartsAt: at(2024, time.June, 11, 0, 0), AllDay: true})

	if len(bk.Events(LaneItems, 0)) != 1 || len(bk.Events(LaneAllDay, 0)) != 1 {
		t.Error("a full cell in one lane spilled into another lane")
	}
}

func TestPointerContents(t *testing.T) {
	bk := NewBuckets(10)

	bk.assign(LaneItems, 100, Event{
		ID:       1,
		Title:    "Design review",
		StartsAt: at(2024, time.June, 11, 14, 0),
		EndsAt:   at(2024, time.June, 11, 15, 0),
		Location: "Room 4",
	})
	bk.assign(LaneAllDay, 3, Event{
		ID:       2,
		StartsAt: at(2024, time.June, 12, 0, 0),
		AllDay:   true,
	})

	ptrs := bk.Pointers()
	if len(ptrs) != 2 {
		t.Fatalf("pointers = %d, want 2", len(ptrs))
	}

	timed := ptrs[0]
	if timed.AnchorID != "1-100" {
		t.Errorf("AnchorID = %q, want %q", timed.AnchorID, "1-100")
	}
	if timed.Title != "Design review" || timed.Location != "Room 4" {
		t.Errorf("timed pointer = %+v", timed)
	}
	if timed.Start != "2:00 pm on June 11, 2024" {
		t.Errorf("Start = %q", timed.Start)
	}
	if timed.End != "3:00 pm on June 11, 2024" {
		t.Errorf("End = %q", timed.End)
	}

	allDay := ptrs[1]
	if allDay.AnchorID != "2-3" {
		t.Errorf("AnchorID = %q, want %q", allDay.AnchorID, "2-3")
	}
	if allDay.Title != "(No title)" {
		t.Errorf("Title = %q, want the placeholder", allDay.Title)
	}
	if !allDay.AllDay || allDay.Start != "" || allDay.End != "" {
		t.Errorf("all-day pointer carries clock times: %+v", allDay)
	}
}
