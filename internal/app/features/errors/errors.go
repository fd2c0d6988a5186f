// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/roboticsclub/robohub/internal/app/system/authz"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	UserName   string
	Message    string
	BackURL    string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	name, _, signedIn := authz.UserCtx(r)

	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		Title:      "Page not found",
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    "The page you are looking for does not exist.",
		BackURL:    "/",
	}

	templates.Render(w, r, "error_page", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	name, _, signedIn := authz.UserCtx(r)

	data := pageData{
		Title:      "Sign in required",
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    "Please sign in to continue.",
		BackURL:    "/login",
	}

	templates.Render(w, r, "error_page", data)
}

// Forbidden renders a friendly "not allowed" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	name, _, signedIn := authz.UserCtx(r)

	data := pageData{
		Title:      "Not allowed",
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    "You do not have permission to view this page.",
		BackURL:    "/",
	}

	templates.Render(w, r, "error_page", data)
}
