// internal/app/features/fest/routes.go
package fest

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the public fest application routes (mounted at /fest).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleSubmit)
	return r
}

// AdminRoutes returns the review routes (mounted at /admin/fest behind
// the session gate).
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeAdminList)
	r.Get("/export.csv", h.HandleExportCSV)
	r.Post("/{id}/status", h.HandleSetStatus)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
