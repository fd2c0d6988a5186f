package authutil_test

import (
	"testing"

	"github.com/roboticsclub/robohub/internal/app/system/authutil"
)

func creds(t *testing.T, username, password string) authutil.FallbackCredentials {
	t.Helper()
	hash, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return authutil.FallbackCredentials{Username: username, PasswordHash: hash}
}

func TestCheck_ValidCredentials(t *testing.T) {
	c := creds(t, "admin", "hunter2-but-longer")
	if !c.Check("admin", "hunter2-but-longer") {
		t.Error("valid credentials should pass")
	}
}

func TestCheck_WrongPassword(t *testing.T) {
	c := creds(t, "admin", "correct")
	if c.Check("admin", "wrong") {
		t.Error("wrong password should fail")
	}
}

func TestCheck_WrongUsername(t *testing.T) {
	c := creds(t, "admin", "correct")
	if c.Check("root", "correct") {
		t.Error("wrong username should fail")
	}
}

func TestCheck_DisabledWhenUnconfigured(t *testing.T) {
	var c authutil.FallbackCredentials
	if c.Enabled() {
		t.Error("empty credentials should be disabled")
	}
	if c.Check("", "") {
		t.Error("disabled fallback must never authenticate")
	}
}
