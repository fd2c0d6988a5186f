package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/roboticsclub/robohub/internal/app/features/authgoogle"
	"github.com/roboticsclub/robohub/internal/app/store/oauthstate"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, clientID, clientSecret string) (*authgoogle.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "robohub_test", "", 24*time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	h := authgoogle.NewHandler(db, sm, oauthstate.New(db), clientID, clientSecret, "https://club.example.com", logger)
	return h, db
}

func TestServeLogin_NotConfigured(t *testing.T) {
	h, _ := newTestHandler(t, "", "")

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?error=google_not_configured" {
		t.Errorf("redirect = %q, want the not-configured error", loc)
	}
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	h, _ := newTestHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("redirect = %q, want Google's consent screen", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("redirect = %q, want a state parameter", loc)
	}
}

func TestServeCallback_MissingState(t *testing.T) {
	h, _ := newTestHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()

	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login?error=invalid_state" {
		t.Errorf("redirect = %q, want the invalid-state error", loc)
	}
}

func TestServeCallback_UnknownState(t *testing.T) {
	h, _ := newTestHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?state=never-saved&code=abc", nil)
	rec := httptest.NewRecorder()

	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login?error=invalid_state" {
		t.Errorf("redirect = %q, want the invalid-state error", loc)
	}
}

func TestServeCallback_ProviderError(t *testing.T) {
	h, _ := newTestHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()

	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login?error=google_denied" {
		t.Errorf("redirect = %q, want the denied error", loc)
	}
}
