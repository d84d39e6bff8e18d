package http

import "github.com/bubom6755/portfolio-backend/internal/projects/store"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}
