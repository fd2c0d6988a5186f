// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the login routes (mounted at /login). Signed-in users
// are bounced straight to the admin landing page.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RedirectIfAuthenticated("/admin"))

	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)

	return r
}
