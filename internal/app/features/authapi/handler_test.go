package authapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/roboticsclub/robohub/internal/app/features/authapi"
	userstore "github.com/roboticsclub/robohub/internal/app/store/users"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/authutil"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"github.com/roboticsclub/robohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*authapi.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "robohub_test", "", 24*time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	hash, err := authutil.HashPassword("a-long-club-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	fallback := authutil.FallbackCredentials{Username: "admin", PasswordHash: hash}
	return authapi.NewHandler(db, sm, fallback, logger), db
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeLogin(t *testing.T, rec *httptest.ResponseRecorder) (success bool, errMsg string) {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Success, resp.Error
}

func TestHandleLogin_FallbackSuccess(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.HandleLogin, "/api/login",
		`{"username":"admin","password":"a-long-club-password"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ok, _ := decodeLogin(t, rec); !ok {
		t.Error("success should be true")
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie")
	}
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.HandleLogin, "/api/login",
		`{"username":"admin","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	ok, errMsg := decodeLogin(t, rec)
	if ok {
		t.Error("success should be false")
	}
	if errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestHandleLogin_UIDPath(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := userstore.New(db).Create(ctx, models.User{
		FullName:   "Club Admin",
		Email:      "club-admin@example.com",
		GoogleUID:  "google-subject-1",
		Authorized: true,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	rec := postJSON(t, h.HandleLogin, "/api/login", `{"uid":"google-subject-1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ok, _ := decodeLogin(t, rec); !ok {
		t.Error("success should be true for an authorized UID")
	}

	got, err := userstore.New(db).GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LastLoginAt == nil {
		t.Error("last login should be stamped")
	}
}

func TestHandleLogin_UIDNotAuthorized(t *testing.T) {
	h, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := userstore.New(db).Create(ctx, models.User{
		FullName:  "Pending Admin",
		Email:     "pending@example.com",
		GoogleUID: "google-subject-2",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	rec := postJSON(t, h.HandleLogin, "/api/login", `{"uid":"google-subject-2"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.HandleLogin, "/api/login", `{"username":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCheckAuth_Anonymous(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/check-auth", nil)
	rec := httptest.NewRecorder()

	h.HandleCheckAuth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Authenticated {
		t.Error("anonymous request should read as unauthenticated")
	}
}

func TestHandleLogout(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.HandleLogout, "/api/logout", ``)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ok, _ := decodeLogin(t, rec); !ok {
		t.Error("logout should report success")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
		t.Error("expected an immediate deletion cookie")
	}
}
