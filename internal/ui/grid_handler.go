package ui

import (
	"encoding/json"
	"net/http"
	"time"

	"gitea.jw6.us/james/caltable/internal/calendar"
	"gitea.jw6.us/james/caltable/internal/http/errors"
	"gitea.jw6.us/james/caltable/internal/metrics"
	"gitea.jw6.us/james/caltable/internal/store"
)

type eventView struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	AllDay bool   `json:"all_day,omitempty"`
}

type cellView struct {
	calendar.Cell
	Events []eventView `json:"events,omitempty"`
}

type boundaryView struct {
	Mode         string        `json:"mode"`
	Anchor       calendar.Date `json:"anchor"`
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	StartWeekday int           `json:"start_weekday"`
}

type gridResponse struct {
	Boundary boundaryView        `json:"boundary"`
	Nav      calendar.Navigation `json:"nav"`
	Cells    []cellView          `json:"cells"`
	Pointers []calendar.Pointer  `json:"pointers"`
}

// Grid returns the laid-out view for one calendar as JSON.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	id, err := calendarID(r)
	if err != nil {
		errors.BadRequestError(w, r, err, "invalid calendar id")
		return
	}

	if _, err := h.store.Calendars.GetByID(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		errors.InternalError(w, r, err, "load calendar")
		return
	}

	layout, err := h.buildLayout(r, id)
	if err != nil {
		errors.InternalError(w, r, err, "build grid")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(gridView(layout)); err != nil {
		errors.LogError(r, "encode grid response", err)
	}
}

// buildLayout loads the events overlapping the requested view and runs
// the layout engine over them.
func (h *Handler) buildLayout(r *http.Request, id int64) (calendar.Layout, error) {
	opts := h.parseGridOptions(r)

	boundary := calendar.ComputeBoundary(opts.Mode, opts.Year, opts.Month, opts.Day)
	stored, err := h.store.Events.ListInRange(r.Context(), id, boundary.Start, boundary.End, nil)
	if err != nil {
		return calendar.Layout{}, err
	}

	layout := calendar.Build(opts, layoutEvents(stored))
	metrics.ObserveLayout(string(layout.Boundary.Mode), len(layout.Pointers))
	return layout, nil
}

func gridView(layout calendar.Layout) gridResponse {
	resp := gridResponse{
		Boundary: boundaryView{
			Mode:         string(layout.Boundary.Mode),
			Anchor:       layout.Boundary.Anchor,
			Start:        layout.Boundary.Start,
			End:          layout.Boundary.End,
			StartWeekday: int(layout.Boundary.StartWeekday),
		},
		Nav:      layout.Nav,
		Pointers: layout.Pointers,
		Cells:    make([]cellView, 0, len(layout.Cells)),
	}

	for _, c := range layout.Cells {
		cv := cellView{Cell: c}
		for _, ev := range c.Events {
			cv.Events = append(cv.Events, eventView{ID: ev.ID, Title: ev.DisplayTitle(), AllDay: ev.AllDay})
		}
		resp.Cells = append(resp.Cells, cv)
	}

	return resp
}

// layoutEvents converts stored rows into the layout engine's input.
func layoutEvents(stored []store.Event) []calendar.Event {
	events := make([]calendar.Event, 0, len(stored))
	for _, ev := range stored {
		le := calendar.Event{
			ID:             ev.ID,
			Title:          ev.Title,
			StartsAt:       ev.StartsAt,
			AllDay:         ev.AllDay,
			Location:       ev.Location,
			RepeatInterval: ev.RepeatInterval,
		}
		if ev.EndsAt != nil {
			le.EndsAt = *ev.EndsAt
		}
		if ev.ExpiresAt != nil {
			le.ExpiresAt = *ev.ExpiresAt
		}
		events = append(events, le)
	}
	return events
}
