package ui

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/caltable/internal/calendar"
	"gitea.jw6.us/james/caltable/internal/feed"
	"gitea.jw6.us/james/caltable/internal/http/errors"
	"gitea.jw6.us/james/caltable/internal/store"
)

// formTimeLayout matches datetime-local form inputs.
const formTimeLayout = "2006-01-02T15:04"

// Calendars displays all calendars.
func (h *Handler) Calendars(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.store.Calendars.List(r.Context())
	if err != nil {
		errors.InternalError(w, r, err, "load calendars")
		return
	}

	data := h.withFlash(r, map[string]any{
		"Title":     "Calendars",
		"Calendars": calendars,
	})
	h.render(w, r, "calendars.html", data)
}

// CreateCalendar creates a new calendar.
func (h *Handler) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirect(w, r, "/calendars", map[string]string{"error": "invalid form"})
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.redirect(w, r, "/calendars", map[string]string{"error": "name is required"})
		return
	}

	cal := store.Calendar{Name: name}
	if color := strings.TrimSpace(r.FormValue("color")); color != "" {
		cal.Color = &color
	}

	if _, err := h.store.Calendars.Create(r.Context(), cal); err != nil {
		h.redirect(w, r, "/calendars", map[string]string{"error": "failed to create"})
		return
	}
	h.redirect(w, r, "/calendars", map[string]string{"status": "created"})
}

// RenameCalendar renames an existing calendar.
func (h *Handler) RenameCalendar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirect(w, r, "/calendars", map[string]string{"error": "invalid form"})
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.redirect(w, r, "/calendars", map[string]string{"error": "name is required"})
		return
	}
	id, err := calendarID(r)
	if err != nil {
		h.redirect(w, r, "/calendars", map[string]string{"error": "invalid id"})
		return
	}
	if err := h.store.Calendars.Rename(r.Context(), id, name); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		h.redirect(w, r, "/calendars", map[string]string{"error": "rename failed"})
		return
	}
	h.redirect(w, r, "/calendars", map[string]string{"status": "renamed"})
}

// DeleteCalendar deletes a calendar and its events.
func (h *Handler) DeleteCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := calendarID(r)
	if err != nil {
		h.redirect(w, r, "/calendars", map[string]string{"error": "invalid id"})
		return
	}
	if err := h.store.Calendars.Delete(r.Context(), id); err != nil {
		h.redirect(w, r, "/calendars", map[string]string{"error": "delete failed"})
		return
	}
	h.redirect(w, r, "/calendars", map[string]string{"status": "deleted"})
}

// ViewCalendar renders one calendar's grid as an HTML page.
func (h *Handler) ViewCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := calendarID(r)
	if err != nil {
		errors.BadRequestError(w, r, err, "invalid calendar id")
		return
	}

	cal, err := h.store.Calendars.GetByID(r.Context(), id)
	if err != nil {
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

	// Rows group cells for the template's table markup.
	var rows [][]calendar.Cell
	for _, c := range layout.Cells {
		if c.Row >= len(rows) {
			rows = append(rows, nil)
		}
		rows[c.Row] = append(rows[c.Row], c)
	}

	data := h.withFlash(r, map[string]any{
		"Title":    cal.Name,
		"Calendar": cal,
		"Boundary": layout.Boundary,
		"Mode":     string(layout.Boundary.Mode),
		"Nav":      layout.Nav,
		"Rows":     rows,
		"Pointers": layout.Pointers,
	})
	h.render(w, r, "calendar_view.html", data)
}

// CreateEvent creates or replaces an event from form input.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "invalid form")
		return
	}

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

	startsAt, err := time.ParseInLocation(formTimeLayout, strings.TrimSpace(r.FormValue("starts_at")), time.Local)
	if err != nil {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "start time is required"})
		return
	}

	ev := store.Event{
		CalendarID:     id,
		UID:            generateUID(),
		Title:          strings.TrimSpace(r.FormValue("title")),
		StartsAt:       startsAt,
		AllDay:         r.FormValue("all_day") == "on",
		Location:       strings.TrimSpace(r.FormValue("location")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		RepeatInterval: parseRepeat(r.FormValue("repeat")),
		Status:         store.StatusPublish,
	}

	if v := strings.TrimSpace(r.FormValue("ends_at")); v != "" {
		if endsAt, err := time.ParseInLocation(formTimeLayout, v, time.Local); err == nil {
			ev.EndsAt = &endsAt
		}
	}
	if v := strings.TrimSpace(r.FormValue("expires_at")); v != "" {
		if expiresAt, err := time.ParseInLocation(formTimeLayout, v, time.Local); err == nil {
			ev.ExpiresAt = &expiresAt
		}
	}

	if _, err := h.store.Events.Upsert(r.Context(), ev); err != nil {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "failed to create event"})
		return
	}

	h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"status": "event_created"})
}

// DeleteEvent removes an event from a calendar.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := calendarID(r)
	if err != nil {
		errors.BadRequestError(w, r, err, "invalid calendar id")
		return
	}

	rawUID := chi.URLParam(r, "uid")
	uid, err := url.PathUnescape(rawUID)
	if err != nil || uid == "" {
		uid = rawUID
	}
	if uid == "" {
		errors.BadRequestError(w, r, fmt.Errorf("empty event uid"), "invalid event uid")
		return
	}

	if err := h.store.Events.DeleteByUID(r.Context(), id, uid); err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "failed to delete event"})
		return
	}
	h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"status": "event_deleted"})
}

// ImportCalendar imports events from an uploaded ICS file.
func (h *Handler) ImportCalendar(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "invalid form data"})
		return
	}

	file, _, err := r.FormFile("ics_file")
	if err != nil {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	parsed, err := feed.ParseICS(file)
	if err != nil {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "could not parse file"})
		return
	}
	if len(parsed) == 0 {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "no events found in file"})
		return
	}

	imported := 0
	for _, pe := range parsed {
		if _, err := h.store.Events.Upsert(r.Context(), pe.ToStoreEvent(id)); err != nil {
			errors.LogError(r, "import event upsert", err)
			continue
		}
		imported++
	}

	if imported == 0 {
		h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{"error": "failed to import events"})
		return
	}

	h.redirect(w, r, fmt.Sprintf("/calendars/%d", id), map[string]string{
		"status": fmt.Sprintf("imported_%d_events", imported),
	})
}

func parseRepeat(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "daily", "weekly", "monthly", "yearly":
		return strings.ToLower(strings.TrimSpace(v))
	default:
		return ""
	}
}

func generateUID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf) + "@caltable"
}
