package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/roboticsclub/robohub/internal/app/store/users"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"github.com/roboticsclub/robohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName: "Admin User",
		Email:    "  Admin@Example.COM ",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "admin@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if created.Authorized {
		t.Error("new users must not be authorized by default")
	}
}

func TestStore_Create_MissingEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{FullName: "No Email"}); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestStore_GetByEmail_Normalizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{FullName: "A", Email: "a@x.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	u, err := store.GetByEmail(ctx, "  A@X.COM ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Errorf("got %q", u.Email)
	}
}

func TestStore_GoogleUIDLink(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{FullName: "A", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.GetByGoogleUID(ctx, "sub-123"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments before linking, got %v", err)
	}

	if err := store.LinkGoogleUID(ctx, created.ID, "sub-123"); err != nil {
		t.Fatalf("LinkGoogleUID failed: %v", err)
	}

	u, err := store.GetByGoogleUID(ctx, "sub-123")
	if err != nil {
		t.Fatalf("GetByGoogleUID failed: %v", err)
	}
	if u.ID != created.ID {
		t.Error("linked user mismatch")
	}
}

func TestStore_SetAuthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{FullName: "A", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetAuthorized(ctx, created.ID, true); err != nil {
		t.Fatalf("SetAuthorized failed: %v", err)
	}
	u, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !u.Authorized {
		t.Error("Authorized flag not set")
	}

	if err := store.SetAuthorized(ctx, primitive.NewObjectID(), true); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments for missing user, got %v", err)
	}
}
