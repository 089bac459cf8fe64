package calendar

import "time"

// Options select the view a layout is built for. Now is injected so
// "today" highlighting is testable; a zero Now falls back to the system
// clock.
type Options struct {
	Mode       Mode
	Year       int
	Month      int
	Day        int
	MaxPerCell int
	Now        time.Time
}

// Layout is the complete result of one render pass: the resolved view
// boundary, every cell in display order, the tooltip summaries keyed by
// anchor id, and the navigation anchors for the surrounding pages.
type Layout struct {
	Boundary Boundary
	Nav      Navigation
	Cells    []Cell
	Pointers []Pointer
}

// Build runs the full pipeline: boundary, normalize, cell mapping,
// bucket assignment, and the grid walk. Events the caller supplies
// outside the view, or without a usable start, simply do not appear;
// nothing here fails. Each call constructs fresh buckets, so concurrent
// builds are independent.
func Build(opts Options, events []Event) Layout {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	boundary := ComputeBoundary(opts.Mode, opts.Year, opts.Month, opts.Day)
	buckets := NewBuckets(opts.MaxPerCell)

	for _, ev := range events {
		it, ok := normalize(ev)
		if !ok {
			continue
		}
		p := mapToCells(boundary, it)
		for _, cell := range p.cells {
			buckets.assign(p.lane, cell, it.Event)
		}
	}

	return Layout{
		Boundary: boundary,
		Nav:      boundary.Navigate(now),
		Cells:    Walk(boundary, buckets, now),
		Pointers: buckets.Pointers(),
	}
}
