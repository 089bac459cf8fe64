package feed

import (
	"strings"
	"testing"
	"time"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//caltable//test//EN
BEGIN:VEVENT
UID:meeting-1@example.com
SUMMARY:Design review
LOCATION:Room 4
DESCRIPTION:Quarterly review
DTSTART:20240611T140000Z
DTEND:20240611T150000Z
END:VEVENT
BEGIN:VEVENT
UID:holiday-1@example.com
SUMMARY:Company holiday
DTSTART;VALUE=DATE:20240612
DTEND;VALUE=DATE:20240613
END:VEVENT
BEGIN:VEVENT
UID:standup-1@example.com
SUMMARY:Standup
DTSTART:20240610T090000Z
DTEND:20240610T091500Z
RRULE:FREQ=WEEKLY;UNTIL=20241231T000000Z
END:VEVENT
BEGIN:VEVENT
SUMMARY:No uid here
DTSTART:20240615T090000Z
END:VEVENT
END:VCALENDAR
`

func TestParseICS(t *testing.T) {
	events, err := ParseICS(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("ParseICS: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("parsed %d events, want 3 (the UID-less VEVENT is skipped)", len(events))
	}

	meeting := events[0]
	if meeting.UID != "meeting-1@example.com" {
		t.Errorf("UID = %q", meeting.UID)
	}
	if meeting.Title != "Design review" || meeting.Location != "Room 4" {
		t.Errorf("meeting = %+v", meeting)
	}
	want := time.Date(2024, time.June, 11, 14, 0, 0, 0, time.UTC)
	if !meeting.StartsAt.Equal(want) {
		t.Errorf("StartsAt = %v, want %v", meeting.StartsAt, want)
	}
	if meeting.EndsAt == nil || !meeting.EndsAt.Equal(want.Add(time.Hour)) {
		t.Errorf("EndsAt = %v", meeting.EndsAt)
	}
	if meeting.AllDay {
		t.Error("timed meeting marked all-day")
	}

	holiday := events[1]
	if !holiday.AllDay {
		t.Error("VALUE=DATE event not marked all-day")
	}

	standup := events[2]
	if standup.RepeatInterval != "weekly" {
		t.Errorf("RepeatInterval = %q, want weekly", standup.RepeatInterval)
	}
	if standup.ExpiresAt == nil || standup.ExpiresAt.Year() != 2024 {
		t.Errorf("ExpiresAt = %v", standup.ExpiresAt)
	}
}

func TestParseICSRejectsGarbage(t *testing.T) {
	if _, err := ParseICS(strings.NewReader("not an icalendar payload")); err == nil {
		t.Fatal("ParseICS accepted a non-ICS payload")
	}
}

func TestToStoreEvent(t *testing.T) {
	events, err := ParseICS(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("ParseICS: %v", err)
	}

	ev := events[0].ToStoreEvent(42)
	if ev.CalendarID != 42 {
		t.Errorf("CalendarID = %d", ev.CalendarID)
	}
	if ev.Status != "publish" {
		t.Errorf("Status = %q, want publish", ev.Status)
	}
	if ev.UID != "meeting-1@example.com" {
		t.Errorf("UID = %q", ev.UID)
	}
}
