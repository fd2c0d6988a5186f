package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/roboticsclub/robohub/internal/app/features/login"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/authutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, username, password string) *login.Handler {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "robohub_test", "", 24*time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	var fallback authutil.FallbackCredentials
	if username != "" {
		hash, err := authutil.HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}
		fallback = authutil.FallbackCredentials{Username: username, PasswordHash: hash}
	}

	return login.NewHandler(sm, uierrors.NewErrorLogger(logger), fallback, false, logger)
}

func postLogin(t *testing.T, h *login.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	// Re-render may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		h.HandleLoginPost(rec, req)
	}()
	return rec
}

func TestHandleLoginPost_ValidFallback(t *testing.T) {
	h := newTestHandler(t, "admin", "a-long-club-password")

	rec := postLogin(t, h, url.Values{
		"username": {"admin"},
		"password": {"a-long-club-password"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect = %q, want /admin", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestHandleLoginPost_WrongPassword(t *testing.T) {
	h := newTestHandler(t, "admin", "correct")

	rec := postLogin(t, h, url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Error("wrong password must not redirect to admin")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no session cookie should be set on failure")
	}
}

func TestHandleLoginPost_FallbackDisabled(t *testing.T) {
	h := newTestHandler(t, "", "")

	rec := postLogin(t, h, url.Values{
		"username": {"admin"},
		"password": {"anything"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Error("disabled fallback must never sign in")
	}
}

func TestHandleLoginPost_ReturnURLStaysLocal(t *testing.T) {
	h := newTestHandler(t, "admin", "a-long-club-password")

	rec := postLogin(t, h, url.Values{
		"username": {"admin"},
		"password": {"a-long-club-password"},
		"return":   {"https://evil.example.com/"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect = %q, want external return URLs replaced with /admin", loc)
	}
}

func TestHandleLoginPost_ReturnURLPreserved(t *testing.T) {
	h := newTestHandler(t, "admin", "a-long-club-password")

	rec := postLogin(t, h, url.Values{
		"username": {"admin"},
		"password": {"a-long-club-password"},
		"return":   {"/admin/events"},
	})

	if loc := rec.Header().Get("Location"); loc != "/admin/events" {
		t.Errorf("redirect = %q, want /admin/events", loc)
	}
}
