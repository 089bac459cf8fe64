package calendar

import "time"

// Cell is one grid position in display order, together with the events
// that occupy it. Row and Column are display coordinates; Index is the
// lane-specific bucket index the events were assigned under.
type Cell struct {
	Lane    Lane         `json:"lane"`
	Index   int          `json:"index"`
	Row     int          `json:"row"`
	Column  int          `json:"column"`
	Weekday time.Weekday `json:"weekday"`

	// Padding marks month-view filler cells before day 1 and after the
	// last day; padding cells never carry events.
	Padding bool `json:"padding,omitempty"`

	// DayOfMonth is set for month-view day cells, Hour for hour rows in
	// week and day views (-1 otherwise).
	DayOfMonth int `json:"day_of_month,omitempty"`
	Hour       int `json:"hour"`

	IsToday bool    `json:"is_today,omitempty"`
	Events  []Event `json:"-"`
}

// Walk emits every cell of the view in display order. It is a pure
// function of its inputs: walking the same boundary and buckets twice
// yields the same sequence.
func Walk(b Boundary, bk *Buckets, now time.Time) []Cell {
	switch b.Mode {
	case ModeWeek:
		return walkWeek(b, bk, now)
	case ModeDay:
		return walkDay(b, bk, now)
	default:
		return walkMonth(b, bk, now)
	}
}

// walkMonth emits complete weeks: leading padding before day 1, one cell
// per calendar day, and trailing padding to square off the final row.
func walkMonth(b Boundary, bk *Buckets, now time.Time) []Cell {
	days := b.DaysInMonth()
	lead := int(b.StartWeekday)
	rows := (days + lead + 6) / 7

	today := DateOf(now)
	cells := make([]Cell, 0, rows*7)

	for i := 0; i < rows*7; i++ {
		cell := Cell{
			Lane:    LaneItems,
			Index:   i,
			Row:     i / 7,
			Column:  i % 7,
			Weekday: time.Weekday(i % 7),
			Hour:    -1,
		}

		day := i - lead + 1
		if day < 1 || day > days {
			cell.Padding = true
		} else {
			cell.DayOfMonth = day
			cell.IsToday = today == Date{Year: b.Anchor.Year, Month: b.Anchor.Month, Day: day}
			cell.Events = bk.Events(LaneItems, i)
		}

		cells = append(cells, cell)
	}

	return cells
}

// walkWeek emits the all-day and multi-day summary rows, then 24 hour
// rows of 7 weekday columns.
func walkWeek(b Boundary, bk *Buckets, now time.Time) []Cell {
	today := DateOf(now)
	cells := make([]Cell, 0, 14+24*7)

	row := 0
	for _, lane := range []Lane{LaneAllDay, LaneMultiDay} {
		for col := 0; col < 7; col++ {
			cells = append(cells, Cell{
				Lane:    lane,
				Index:   col,
				Row:     row,
				Column:  col,
				Weekday: time.Weekday(col),
				Hour:    -1,
				IsToday: today == DateOf(b.Start.AddDate(0, 0, col)),
				Events:  bk.Events(lane, col),
			})
		}
		row++
	}

	for hour := 0; hour < 24; hour++ {
		for col := 0; col < 7; col++ {
			cells = append(cells, Cell{
				Lane:    LaneItems,
				Index:   hour*7 + col,
				Row:     row,
				Column:  col,
				Weekday: time.Weekday(col),
				Hour:    hour,
				IsToday: today == DateOf(b.Start.AddDate(0, 0, col)),
				Events:  bk.Events(LaneItems, hour*7+col),
			})
		}
		row++
	}

	return cells
}

// walkDay emits single-column summary rows followed by 24 hour rows.
func walkDay(b Boundary, bk *Buckets, now time.Time) []Cell {
	isToday := DateOf(now) == b.Anchor
	weekday := b.Start.Weekday()
	cells := make([]Cell, 0, 26)

	row := 0
	for _, lane := range []Lane{LaneAllDay, LaneMultiDay} {
		cells = append(cells, Cell{
			Lane:    lane,
			Index:   0,
			Row:     row,
			Weekday: weekday,
			Hour:    -1,
			IsToday: isToday,
			Events:  bk.Events(lane, 0),
		})
		row++
	}

	for hour := 0; hour < 24; hour++ {
		cells = append(cells, Cell{
			Lane:    LaneItems,
			Index:   hour,
			Row:     row,
			Weekday: weekday,
			Hour:    hour,
			IsToday: isToday,
			Events:  bk.Events(LaneItems, hour),
		})
		row++
	}

	return cells
}
