package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/caltable/internal/calendar"
	"gitea.jw6.us/james/caltable/internal/http/csrf"
	"gitea.jw6.us/james/caltable/internal/http/errors"
)

// parseGridOptions extracts the view selection from query parameters.
// Missing anchor parts default to today; max falls back to the
// configured or engine default.
func (h *Handler) parseGridOptions(r *http.Request) calendar.Options {
	q := r.URL.Query()
	now := time.Now()

	opts := calendar.Options{
		Mode:       calendar.ParseMode(q.Get("mode")),
		Year:       now.Year(),
		Month:      int(now.Month()),
		Day:        now.Day(),
		MaxPerCell: h.cfg.MaxPerCell,
		Now:        now,
	}

	if v, err := strconv.Atoi(q.Get("cy")); err == nil {
		opts.Year = v
	}
	if v, err := strconv.Atoi(q.Get("cm")); err == nil {
		opts.Month = v
	}
	if v, err := strconv.Atoi(q.Get("cd")); err == nil {
		opts.Day = v
	}
	if v, err := strconv.Atoi(q.Get("max")); err == nil && v > 0 {
		opts.MaxPerCell = v
	}

	return opts
}

// calendarID parses the {id} route parameter.
func calendarID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// withFlash adds flash messages and the CSRF token to template data.
func (h *Handler) withFlash(r *http.Request, data map[string]any) map[string]any {
	q := r.URL.Query()
	if status := q.Get("status"); status != "" {
		data["FlashMessage"] = status
	}
	if err := q.Get("error"); err != "" {
		data["FlashError"] = err
	}
	if token := csrf.TokenFromContext(r.Context()); token != "" {
		data["CSRFToken"] = token
	}
	return data
}

// redirect redirects to a path with query parameters.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	location := path
	if encoded := q.Encode(); encoded != "" {
		location += "?" + encoded
	}
	http.Redirect(w, r, location, http.StatusFound)
}

// render executes a template and writes the response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		errors.InternalError(w, r, fmt.Errorf("template not found"), fmt.Sprintf("template %q not found", name))
		return
	}

	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		errors.InternalError(w, r, err, fmt.Sprintf("template render error for %q", name))
	}
}
