// internal/app/features/events/routes.go
package events

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the public event routes (mounted at /events).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	return r
}

// AdminRoutes returns the back-office event routes (mounted at
// /admin/events behind the session gate).
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeAdminList)
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
