// internal/app/features/team/routes.go
package team

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the public team routes (mounted at /team).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoster)
	return r
}

// AdminRoutes returns the back-office roster routes (mounted at
// /admin/team behind the session gate).
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeEdit)
	r.Post("/{id}/members", h.HandleAddMember)
	r.Post("/{id}/members/delete", h.HandleRemoveMember)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
