package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"gitea.jw6.us/james/caltable/internal/auth"
	"gitea.jw6.us/james/caltable/internal/config"
	"gitea.jw6.us/james/caltable/internal/http/csrf"
	"gitea.jw6.us/james/caltable/internal/http/ratelimit"
	"gitea.jw6.us/james/caltable/internal/metrics"
	"gitea.jw6.us/james/caltable/internal/store"
	"gitea.jw6.us/james/caltable/internal/ui"
)

// NewRouter wires all HTTP routes for the grid API and HTML pages.
func NewRouter(cfg *config.Config, store *store.Store, authService *auth.Service) http.Handler {
	r := chi.NewRouter()

	// Mutating endpoints: 5 requests per second, burst of 10
	writeRateLimiter := ratelimit.NewIPRateLimiter(rate.Limit(5), 10, 5*time.Minute, cfg.TrustedProxies)
	// Read endpoints: 20 requests per second, burst of 50
	readRateLimiter := ratelimit.NewIPRateLimiter(rate.Limit(20), 50, 5*time.Minute, cfg.TrustedProxies)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(overrideMethod)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.HealthCheck(ctx); err != nil {
			http.Error(w, "unready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.PrometheusEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			metrics.Handler().ServeHTTP(w, r)
		})
	}

	uiHandler := ui.NewHandler(cfg, store)

	// The HTML pages share the CSRF middleware with the mutating routes
	// so GETs issue the token cookie the forms echo back.
	r.Group(func(r chi.Router) {
		r.Use(readRateLimiter.Middleware())
		r.Use(csrf.Middleware(cfg))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/calendars", http.StatusFound)
		})
		r.Get("/calendars", uiHandler.Calendars)
		r.Get("/calendars/{id}", uiHandler.ViewCalendar)
		r.Get("/calendars/{id}/grid", uiHandler.Grid)
	})

	r.Group(func(r chi.Router) {
		r.Use(writeRateLimiter.Middleware())
		r.Use(authService.RequireAuth)
		r.Use(csrf.Middleware(cfg))

		r.Post("/calendars", uiHandler.CreateCalendar)
		r.Put("/calendars/{id}", uiHandler.RenameCalendar)
		r.Delete("/calendars/{id}", uiHandler.DeleteCalendar)

		r.Post("/calendars/{id}/import", uiHandler.ImportCalendar)

		r.Post("/calendars/{id}/events", uiHandler.CreateEvent)
		r.Delete("/calendars/{id}/events/{uid}", uiHandler.DeleteEvent)
		r.Post("/calendars/{id}/events/{uid}/delete", uiHandler.DeleteEvent) // HTML form fallback
	})

	return r
}

func overrideMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.Method
		if r.Method == http.MethodPost {
			if m := strings.TrimSpace(r.PostFormValue("_method")); m != "" {
				method = m
			} else if m := strings.TrimSpace(r.URL.Query().Get("_method")); m != "" {
				method = m
			}
		}
		switch strings.ToUpper(method) {
		case http.MethodPut, http.MethodDelete:
			r.Method = strings.ToUpper(method)
		}
		next.ServeHTTP(w, r)
	})
}
