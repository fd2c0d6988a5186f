package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)

	name, id, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false with no user in context")
	}
	if name != "" || id != primitive.NilObjectID {
		t.Errorf("got name=%q id=%v for anonymous request", name, id)
	}
}

func TestUserCtx_ValidUser(t *testing.T) {
	oid := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/admin", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: oid.Hex(), Name: "Admin"})

	name, id, ok := authz.UserCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if name != "Admin" || id != oid {
		t.Errorf("got name=%q id=%v", name, id)
	}
}

func TestUserCtx_MalformedID_FailsClosed(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "not-an-objectid", Name: "Admin"})

	if _, _, ok := authz.UserCtx(req); ok {
		t.Error("malformed session user ID must fail closed")
	}
	if authz.IsSignedIn(req) {
		t.Error("IsSignedIn must be false for malformed ID")
	}
}
