// internal/app/features/faculty/routes.go
package faculty

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the public faculty routes (mounted at /faculty).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	return r
}

// AdminRoutes returns the back-office faculty routes (mounted at
// /admin/faculty behind the session gate).
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
