package calendar

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		ev       Event
		wantOK   bool
		wantSpan int
	}{
		{
			name:   "missing start is discarded",
			ev:     Event{ID: 1, EndsAt: at(2024, time.June, 11, 10, 0)},
			wantOK: false,
		},
		{
			name:     "missing end becomes a point in time",
			ev:       Event{ID: 2, StartsAt: at(2024, time.June, 11, 10, 0)},
			wantOK:   true,
			wantSpan: 1,
		},
		{
			name:     "same day",
			ev:       Event{ID: 3, StartsAt: at(2024, time.June, 11, 9, 0), EndsAt: at(2024, time.June, 11, 17, 0)},
			wantOK:   true,
			wantSpan: 1,
		},
		{
			// Two hours of clock time, two calendar days.
			name:     "midnight crossing",
			ev:       Event{ID: 4, StartsAt: at(2024, time.June, 11, 23, 0), EndsAt: at(2024, time.June, 12, 1, 0)},
			wantOK:   true,
			wantSpan: 2,
		},
		{
			name:     "three day span",
			ev:       Event{ID: 5, StartsAt: at(2024, time.June, 10, 9, 0), EndsAt: at(2024, time.June, 12, 17, 0)},
			wantOK:   true,
			wantSpan: 3,
		},
		{
			// Dates only: the span count ignores that the end's clock time
			// precedes the start's.
			name:     "end clock earlier than start clock",
			ev:       Event{ID: 6, StartsAt: at(2024, time.June, 10, 22, 0), EndsAt: at(2024, time.June, 12, 6, 0)},
			wantOK:   true,
			wantSpan: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := normalize(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if it.SpanDays != tt.wantSpan {
				t.Errorf("SpanDays = %d, want %d", it.SpanDays, tt.wantSpan)
			}
			if it.EndsAt.IsZero() {
				t.Error("normalized event has no end")
			}
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	if got := (Event{Title: "Standup"}).DisplayTitle(); got != "Standup" {
		t.Errorf("DisplayTitle = %q", got)
	}
	if got := (Event{}).DisplayTitle(); got != "(No title)" {
		t.Errorf("DisplayTitle = %q, want placeholder", got)
	}
}
