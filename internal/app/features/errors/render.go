// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/roboticsclub/robohub/internal/app/system/authz"
	"go.uber.org/zap"
)

// ErrorLogger renders error pages while logging the underlying cause.
// Handlers pass a terse log message plus a safe user-facing message, so
// internals never leak into responses.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBadRequest logs err and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusBadRequest, "Invalid request", userMsg, backURL)
}

// LogNotFound logs err and renders a 404 page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Info(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusNotFound, "Not found", userMsg, backURL)
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, code int, title, userMsg, backURL string) {
	// API and HTMX clients get the uniform JSON error contract.
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   userMsg,
		})
		return
	}

	name, _, signedIn := authz.UserCtx(r)
	if backURL == "" {
		backURL = "/"
	}

	w.WriteHeader(code)
	data := pageData{
		Title:      title,
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    userMsg,
		BackURL:    backURL,
	}
	templates.Render(w, r, "error_page", data)
}

func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
