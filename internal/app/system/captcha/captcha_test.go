package captcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roboticsclub/robohub/internal/app/system/captcha"
	"go.uber.org/zap"
)

func TestVerify_DisabledPassesEverything(t *testing.T) {
	v := captcha.New("", zap.NewNop())
	if v.Enabled() {
		t.Error("verifier with no secret must be disabled")
	}
	if err := v.Verify(context.Background(), "", ""); err != nil {
		t.Errorf("disabled verifier rejected token: %v", err)
	}
}

func TestVerify_MissingToken(t *testing.T) {
	v := captcha.New("secret", zap.NewNop())
	if err := v.Verify(context.Background(), "  ", ""); err == nil {
		t.Error("expected error for blank token")
	}
}

func TestVerify_AcceptsValidToken(t *testing.T) {
	var gotSecret, gotResponse string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotSecret = r.FormValue("secret")
		gotResponse = r.FormValue("response")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	v := captcha.New("test-secret", zap.NewNop())
	v.SetVerifyURL(srv.URL)

	if err := v.Verify(context.Background(), "client-token", "1.2.3.4"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if gotSecret != "test-secret" || gotResponse != "client-token" {
		t.Errorf("provider got secret=%q response=%q", gotSecret, gotResponse)
	}
}

func TestVerify_RejectsBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := captcha.New("test-secret", zap.NewNop())
	v.SetVerifyURL(srv.URL)

	if err := v.Verify(context.Background(), "bad-token", ""); err == nil {
		t.Error("expected error for rejected token")
	}
}
