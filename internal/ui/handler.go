package ui

import (
	"html/template"

	"gitea.jw6.us/james/caltable/internal/config"
	"gitea.jw6.us/james/caltable/internal/store"
)

// Handler serves the calendar grid pages and the JSON grid API.
type Handler struct {
	cfg       *config.Config
	store     *store.Store
	templates map[string]*template.Template
}

func NewHandler(cfg *config.Config, store *store.Store) *Handler {
	return &Handler{cfg: cfg, store: store, templates: templates}
}
