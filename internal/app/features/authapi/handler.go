// internal/app/features/authapi/handler.go
//
// JSON mirror of the session gate, used by scripted clients and by
// client-rendered admin views that probe auth state before fetching.
package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	userstore "github.com/roboticsclub/robohub/internal/app/store/users"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/authutil"
	"github.com/roboticsclub/robohub/internal/app/system/ratelimit"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Fallback   authutil.FallbackCredentials

	limiter *ratelimit.LoginLimiter
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, fallback authutil.FallbackCredentials, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		SessionMgr: sessionMgr,
		Fallback:   fallback,
		limiter:    ratelimit.NewLoginLimiter(),
	}
}

// loginRequest carries either a delegated-identity UID or the static
// fallback credentials. Exactly one path is tried: UID wins if present.
type loginRequest struct {
	UID      string `json:"uid,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type checkAuthResponse struct {
	Authenticated bool `json:"authenticated"`
}

// HandleLogin handles POST /api/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, loginResponse{Error: "invalid JSON body"})
		return
	}

	key := req.UID
	if key == "" {
		key = req.Username
	}
	if allowed, reason := h.limiter.Check(r, key); !allowed {
		writeJSON(w, http.StatusTooManyRequests, loginResponse{Error: reason})
		return
	}

	if req.UID != "" {
		h.loginWithUID(w, r, req.UID)
		return
	}
	h.loginWithFallback(w, r, req.Username, req.Password)
}

// loginWithUID signs in a delegated identity that already completed
// provider authentication. The UID must match a user record with the
// Authorized flag set; everything else is a generic credential failure.
func (h *Handler) loginWithUID(w http.ResponseWriter, r *http.Request, uid string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := userstore.New(h.DB).GetByGoogleUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("api login: user lookup", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, loginResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, loginResponse{Error: "invalid credentials"})
		return
	}
	if !user.Authorized {
		h.Log.Info("api login: account not authorized", zap.String("user", user.ID.Hex()))
		writeJSON(w, http.StatusUnauthorized, loginResponse{Error: "invalid credentials"})
		return
	}

	if err := userstore.New(h.DB).TouchLastLogin(ctx, user.ID); err != nil {
		h.Log.Warn("api login: touch last login", zap.Error(err))
	}

	err = h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
	})
	if err != nil {
		h.Log.Error("api login: session save", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, loginResponse{Error: "internal error"})
		return
	}
	h.limiter.ResetKey(uid)
	writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

func (h *Handler) loginWithFallback(w http.ResponseWriter, r *http.Request, username, password string) {
	if !h.Fallback.Check(username, password) {
		h.Log.Warn("api login rejected", zap.String("username", username))
		writeJSON(w, http.StatusUnauthorized, loginResponse{Error: "invalid credentials"})
		return
	}

	err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  username,
		Email: username,
	})
	if err != nil {
		h.Log.Error("api login: session save", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, loginResponse{Error: "internal error"})
		return
	}
	h.limiter.ResetKey(username)
	writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

// HandleLogout handles POST /api/logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("api logout: clear session", zap.Error(err))
	}
	// The deletion cookie is set regardless; report success either way.
	writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

// HandleCheckAuth handles GET /api/check-auth, a read-only cookie probe.
// Any decode failure reads as unauthenticated.
func (h *Handler) HandleCheckAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checkAuthResponse{
		Authenticated: h.SessionMgr.IsAuthenticated(r),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
