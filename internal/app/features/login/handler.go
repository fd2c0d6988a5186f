// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"strings"

	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/authutil"
	"github.com/roboticsclub/robohub/internal/app/system/ratelimit"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler owns the /login page. Two ways in: delegated Google sign-in
// (handled by the authgoogle feature) and the static-credential
// fallback handled here.
type Handler struct {
	Log           *zap.Logger
	SessionMgr    *auth.SessionManager
	ErrLog        *uierrors.ErrorLogger
	Fallback      authutil.FallbackCredentials
	GoogleEnabled bool

	limiter *ratelimit.LoginLimiter
}

// NewHandler constructs a login Handler.
func NewHandler(sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, fallback authutil.FallbackCredentials, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		Fallback:      fallback,
		GoogleEnabled: googleEnabled,
		limiter:       ratelimit.NewLoginLimiter(),
	}
}

type loginVM struct {
	viewdata.BaseVM
	Error           string
	Username        string
	ReturnURL       string
	GoogleEnabled   bool
	FallbackEnabled bool
}

// errorMessages maps ?error= codes from the OAuth flow to text shown
// on the login page.
var errorMessages = map[string]string{
	"google_denied":         "Google sign-in was cancelled.",
	"google_not_configured": "Google sign-in is not available right now.",
	"invalid_state":         "The sign-in link expired. Please try again.",
	"invalid_code":          "The sign-in link expired. Please try again.",
	"token_exchange":        "Google sign-in failed. Please try again.",
	"user_info":             "Google sign-in failed. Please try again.",
	"no_account":            "No admin account matches that Google account.",
	"not_authorized":        "Your account exists but has not been granted admin access.",
	"internal":              "Something went wrong. Please try again.",
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	data := loginVM{
		BaseVM:          viewdata.NewBaseVM(r, "Sign In", "/"),
		Error:           errorMessages[query.Get(r, "error")],
		ReturnURL:       query.Get(r, "return"),
		GoogleEnabled:   h.GoogleEnabled,
		FallbackEnabled: h.Fallback.Enabled(),
	}
	templates.Render(w, r, "login", data)
}

// HandleLoginPost handles POST /login, the static-credential fallback.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	returnURL := strings.TrimSpace(r.FormValue("return"))

	reRender := func(msg string) {
		data := loginVM{
			BaseVM:          viewdata.NewBaseVM(r, "Sign In", "/"),
			Error:           msg,
			Username:        username,
			ReturnURL:       returnURL,
			GoogleEnabled:   h.GoogleEnabled,
			FallbackEnabled: h.Fallback.Enabled(),
		}
		templates.Render(w, r, "login", data)
	}

	if !h.Fallback.Enabled() {
		reRender("Password sign-in is not available. Use Google sign-in.")
		return
	}
	if allowed, reason := h.limiter.Check(r, username); !allowed {
		h.Log.Warn("fallback login throttled", zap.String("username", username))
		reRender(reason)
		return
	}
	if !h.Fallback.Check(username, password) {
		h.Log.Warn("fallback login rejected", zap.String("username", username))
		reRender("Incorrect username or password.")
		return
	}

	// No user record backs the static fallback; mint a session-scoped ID
	// so downstream code always sees a well-formed ObjectID.
	err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  username,
		Email: username,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "session save failed", err, "Could not sign you in.", "/login")
		return
	}

	h.limiter.ResetKey(username)
	h.Log.Info("fallback login accepted", zap.String("username", username))
	http.Redirect(w, r, safeReturn(returnURL), http.StatusSeeOther)
}

// safeReturn keeps post-login redirects on this site. Anything that is
// not a local path falls back to the admin landing page.
func safeReturn(ret string) string {
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return "/admin"
	}
	return ret
}
