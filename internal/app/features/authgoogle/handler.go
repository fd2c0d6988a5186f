// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/roboticsclub/robohub/internal/app/store/oauthstate"
	userstore "github.com/roboticsclub/robohub/internal/app/store/users"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler runs the delegated Google sign-in flow for the admin gate.
// Admin accounts live in the users collection; a Google identity signs
// in only when a matching record exists AND its Authorized flag is set.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	StateStore *oauthstate.Store

	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// NewHandler creates a Google sign-in handler. baseURL is the public
// origin of this deployment, used to build the callback URL.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	stateStore *oauthstate.Store,
	clientID, clientSecret, baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		SessionMgr:   sessionMgr,
		StateStore:   stateStore,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
	}
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured reports whether Google sign-in can run.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

// ServeLogin handles GET /auth/google: save a one-time state token and
// redirect to Google's consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("google sign-in not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state, err := generateState()
	if err != nil {
		h.Log.Error("generate oauth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	returnURL := query.Get(r, "return")
	expiresAt := time.Now().UTC().Add(10 * time.Minute)
	if err := h.StateStore.Save(ctx, state, returnURL, expiresAt); err != nil {
		h.Log.Error("save oauth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback. Every failure path
// lands back on /login with an error code; the login page translates
// codes into messages.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("google oauth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	returnURL, valid, err := h.StateStore.Validate(ctx, state)
	if err != nil {
		h.Log.Error("validate oauth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}
	if !valid {
		h.Log.Warn("invalid or expired oauth state")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(r.Context(), code)
	if err != nil {
		h.Log.Error("exchange oauth code", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	googleUser, err := fetchGoogleUserInfo(r.Context(), token)
	if err != nil {
		h.Log.Error("fetch google user info", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	user, err := h.findUser(ctx, googleUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Info("google sign-in: no matching admin account",
				zap.String("email", googleUser.Email))
			http.Redirect(w, r, "/login?error=no_account", http.StatusSeeOther)
			return
		}
		h.Log.Error("look up admin user", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	if !user.Authorized {
		h.Log.Info("google sign-in: account not authorized",
			zap.String("email", user.Email),
			zap.String("user", user.ID.Hex()))
		http.Redirect(w, r, "/login?error=not_authorized", http.StatusSeeOther)
		return
	}

	users := userstore.New(h.DB)
	if err := users.TouchLastLogin(ctx, user.ID); err != nil {
		h.Log.Warn("touch last login", zap.Error(err), zap.String("user", user.ID.Hex()))
	}

	err = h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
	})
	if err != nil {
		h.Log.Error("session save after google sign-in", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	h.Log.Info("google sign-in accepted",
		zap.String("email", user.Email),
		zap.String("user", user.ID.Hex()))

	dest := "/admin"
	if returnURL != "" && returnURL[0] == '/' {
		dest = returnURL
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// findUser resolves the Google identity to an admin record: first by a
// previously linked Google UID, then by email. An email match links the
// UID for next time.
func (h *Handler) findUser(ctx context.Context, gu *googleUserInfo) (*models.User, error) {
	users := userstore.New(h.DB)

	if u, err := users.GetByGoogleUID(ctx, gu.ID); err == nil {
		return u, nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	u, err := users.GetByEmail(ctx, gu.Email)
	if err != nil {
		return nil, err
	}

	if u.GoogleUID == "" {
		if err := users.LinkGoogleUID(ctx, u.ID, gu.ID); err != nil {
			h.Log.Warn("link google uid", zap.Error(err), zap.String("user", u.ID.Hex()))
		}
	}
	return u, nil
}

// googleUserInfo is the subset of Google's userinfo response we use.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchGoogleUserInfo retrieves the signed-in identity from Google's
// userinfo endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}

// generateState returns a cryptographically random state token.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
