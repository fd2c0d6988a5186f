package gallery_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/roboticsclub/robohub/internal/app/features/gallery"
	gallerystore "github.com/roboticsclub/robohub/internal/app/store/gallery"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandlers(t *testing.T) (*gallery.Handler, *gallery.AdminHandler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	pub := gallery.NewHandler(db, errLog, logger)
	admin := gallery.NewAdminHandler(db, nil, errLog, logger)
	return pub, admin, db
}

func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func asAdmin(req *http.Request) *http.Request {
	return auth.WithTestUser(req, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Admin User",
		Email: "admin@example.com",
	})
}

func TestHandleUpdateCaption(t *testing.T) {
	_, admin, db := newTestHandlers(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	item := fx.CreateGalleryItem(ctx, "old caption", "gallery/2026/01/abc-photo.jpg")

	form := url.Values{
		"caption":    {"RoboWars finals"},
		"event_name": {"RoboWars 2026"},
	}
	req := httptest.NewRequest("POST", "/admin/gallery/"+item.ID.Hex()+"/caption", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParam(asAdmin(req), "id", item.ID.Hex())
	rec := httptest.NewRecorder()

	admin.HandleUpdateCaption(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	got, err := gallerystore.New(db).GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Caption != "RoboWars finals" || got.EventName != "RoboWars 2026" {
		t.Errorf("item = %q/%q, want updated caption and event", got.Caption, got.EventName)
	}
}

func TestHandleUpdateCaption_NotFound(t *testing.T) {
	_, admin, _ := newTestHandlers(t)

	missing := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("POST", "/admin/gallery/"+missing+"/caption", strings.NewReader("caption=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParam(asAdmin(req), "id", missing)
	rec := httptest.NewRecorder()

	admin.HandleUpdateCaption(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestServePage_Empty(t *testing.T) {
	pub, _, _ := newTestHandlers(t)

	req := httptest.NewRequest("GET", "/gallery", nil)
	rec := httptest.NewRecorder()

	// Render may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		pub.ServePage(rec, req)
	}()

	if rec.Code >= 400 {
		t.Errorf("status = %d, want < 400", rec.Code)
	}
}
