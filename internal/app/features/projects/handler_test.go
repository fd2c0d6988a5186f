package projects_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/roboticsclub/robohub/internal/app/features/projects"
	projectstore "github.com/roboticsclub/robohub/internal/app/store/projects"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandlers(t *testing.T) (*projects.Handler, *projects.AdminHandler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	pub := projects.NewHandler(db, errLog, logger)
	admin := projects.NewAdminHandler(db, nil, errLog, logger)
	return pub, admin, db
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func adminSessionUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Admin User",
		Email: "admin@example.com",
	}
}

func TestServeDetail_NotFound(t *testing.T) {
	pub, _, _ := newTestHandlers(t)

	missing := primitive.NewObjectID().Hex()
	req := withURLParam(httptest.NewRequest("GET", "/projects/"+missing, nil), "id", missing)
	rec := httptest.NewRecorder()

	pub.ServeDetail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleCreate_ParsesListFields(t *testing.T) {
	_, admin, db := newTestHandlers(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body, contentType := multipartForm(t, map[string]string{
		"name":         "Autonomous Rover",
		"technologies": "ROS, OpenCV , Go,",
		"team_members": "Asha Rao | asha-rao\nVikram Singh\n",
		"progress":     "60",
	})

	req := httptest.NewRequest("POST", "/admin/projects", body)
	req.Header.Set("Content-Type", contentType)
	req = auth.WithTestUser(req, adminSessionUser())
	rec := httptest.NewRecorder()

	admin.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	prjs, err := projectstore.New(db).GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(prjs) != 1 {
		t.Fatalf("project count = %d, want 1", len(prjs))
	}
	p := prjs[0]
	if len(p.Technologies) != 3 || p.Technologies[0] != "ROS" || p.Technologies[1] != "OpenCV" {
		t.Errorf("Technologies = %v, want [ROS OpenCV Go]", p.Technologies)
	}
	if len(p.TeamMembers) != 2 {
		t.Fatalf("TeamMembers = %v, want 2 entries", p.TeamMembers)
	}
	if p.TeamMembers[0].Member != "Asha Rao" || p.TeamMembers[0].LinkedinID != "asha-rao" {
		t.Errorf("first member = %+v, want Asha Rao / asha-rao", p.TeamMembers[0])
	}
	if p.TeamMembers[1].LinkedinID != "" {
		t.Errorf("second member linkedin = %q, want empty", p.TeamMembers[1].LinkedinID)
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	_, admin, db := newTestHandlers(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body, contentType := multipartForm(t, map[string]string{
		"name": "",
	})

	req := httptest.NewRequest("POST", "/admin/projects", body)
	req.Header.Set("Content-Type", contentType)
	req = auth.WithTestUser(req, adminSessionUser())
	rec := httptest.NewRecorder()

	// Re-render may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		admin.HandleCreate(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("missing name should not redirect")
	}

	prjs, err := projectstore.New(db).GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(prjs) != 0 {
		t.Errorf("project count = %d, want 0", len(prjs))
	}
}

func TestHandleDelete_Success(t *testing.T) {
	_, admin, db := newTestHandlers(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	p := fx.CreateProject(ctx, "To Delete")

	req := httptest.NewRequest("POST", "/admin/projects/"+p.ID.Hex()+"/delete", nil)
	req = auth.WithTestUser(req, adminSessionUser())
	req = withURLParam(req, "id", p.ID.Hex())
	rec := httptest.NewRecorder()

	admin.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if _, err := projectstore.New(db).GetByID(ctx, p.ID); err == nil {
		t.Error("project should have been deleted")
	}
}
