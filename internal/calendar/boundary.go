package calendar

import "time"

// Date is a plain calendar date in the local wall clock.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// Time returns midnight of the date in the local location.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Boundary describes one view instance: the anchor date the caller asked
// for, the mode, and the half-open [Start, End) timestamp range the view
// covers. Start is always midnight-aligned to the first cell.
type Boundary struct {
	Mode         Mode
	Anchor       Date
	Start        time.Time
	End          time.Time
	StartWeekday time.Weekday
}

// ComputeBoundary resolves a mode and anchor date into the view range.
// Out-of-range anchors (day 31 in February, month 0 or 13) are normalized
// through calendar arithmetic rather than rejected.
func ComputeBoundary(mode Mode, year, month, day int) Boundary {
	anchor := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	b := Boundary{
		Mode:   mode,
		Anchor: DateOf(anchor),
	}

	switch mode {
	case ModeWeek:
		// Most recent Sunday at or before the anchor.
		b.Start = anchor.AddDate(0, 0, -int(anchor.Weekday()))
		b.End = b.Start.AddDate(0, 0, 7)
		b.StartWeekday = time.Sunday
	case ModeDay:
		b.Start = anchor
		b.End = anchor.AddDate(0, 0, 1)
		b.StartWeekday = anchor.Weekday()
	default:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.Local)
		b.Start = first
		b.End = first.AddDate(0, 1, 0)
		b.StartWeekday = first.Weekday()
	}

	return b
}

// DaysInMonth returns the number of calendar days in the boundary's
// anchor month.
func (b Boundary) DaysInMonth() int {
	// Day zero of the following month is the last day of this one.
	return time.Date(b.Anchor.Year, b.Anchor.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Contains reports whether a timestamp falls inside the view range.
func (b Boundary) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Navigation holds the anchor dates for stepping between views. Small
// steps move by one view period; large steps move by the next period up
// (month -> year, week -> month, day -> week).
type Navigation struct {
	Today     Date `json:"today"`
	PrevSmall Date `json:"prev_small"`
	NextSmall Date `json:"next_small"`
	PrevLarge Date `json:"prev_large"`
	NextLarge Date `json:"next_large"`
}

// Navigate computes the previous and next anchors for the boundary.
// Month steps use explicit month rollover (month 0 becomes December of
// the previous year, month 13 becomes January of the next) with the day
// clamped to the target month's length, so stepping back from March 31
// lands on the last day of February rather than spilling forward.
func (b Boundary) Navigate(now time.Time) Navigation {
	nav := Navigation{Today: DateOf(now)}

	switch b.Mode {
	case ModeWeek:
		nav.PrevSmall = DateOf(b.Anchor.Time().AddDate(0, 0, -7))
		nav.NextSmall = DateOf(b.Anchor.Time().AddDate(0, 0, 7))
		nav.PrevLarge = addMonths(b.Anchor, -1)
		nav.NextLarge = addMonths(b.Anchor, 1)
	case ModeDay:
		nav.PrevSmall = DateOf(b.Anchor.Time().AddDate(0, 0, -1))
		nav.NextSmall = DateOf(b.Anchor.Time().AddDate(0, 0, 1))
		nav.PrevLarge = DateOf(b.Anchor.Time().AddDate(0, 0, -7))
		nav.NextLarge = DateOf(b.Anchor.Time().AddDate(0, 0, 7))
	default:
		nav.PrevSmall = addMonths(b.Anchor, -1)
		nav.NextSmall = addMonths(b.Anchor, 1)
		nav.PrevLarge = addYears(b.Anchor, -1)
		nav.NextLarge = addYears(b.Anchor, 1)
	}

	return nav
}

// addMonths steps a date by whole calendar months, rolling the year at
// the 0/13 boundaries and clamping the day to the target month's length.
func addMonths(d Date, months int) Date {
	year := d.Year
	month := int(d.Month) + months

	for month < 1 {
		month += 12
		year--
	}
	for month > 12 {
		month -= 12
		year++
	}

	return Date{
		Year:  year,
		Month: time.Month(month),
		Day:   min(d.Day, lastDay(year, time.Month(month))),
	}
}

func addYears(d Date, years int) Date {
	year := d.Year + years
	return Date{
		Year:  year,
		Month: d.Month,
		Day:   min(d.Day, lastDay(year, d.Month)),
	}
}

func lastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
