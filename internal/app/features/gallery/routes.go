// internal/app/features/gallery/routes.go
package gallery

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the public gallery routes (mounted at /gallery).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	return r
}

// AdminRoutes returns the back-office gallery routes (mounted at
// /admin/gallery behind the session gate).
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleUpload)
	r.Post("/{id}/caption", h.HandleUpdateCaption)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
