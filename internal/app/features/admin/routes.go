// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
)

// Routes returns the back-office routes (mounted at /admin behind the
// session gate). Feature-specific admin routers are mounted alongside
// this one by the app bootstrap.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeHome)

	r.Route("/editor", func(r chi.Router) {
		r.Get("/", h.ServeCollections)
		r.Get("/{collection}", h.ServeDocList)
		r.Get("/{collection}/{id}", h.ServeDoc)
		r.Post("/{collection}/{id}", h.HandleSave)
		r.Post("/{collection}/{id}/fields", h.HandleAddField)
		r.Post("/{collection}/{id}/fields/delete", h.HandleDeleteField)
		r.Post("/{collection}/{id}/delete", h.HandleDeleteDoc)
	})

	return r
}
