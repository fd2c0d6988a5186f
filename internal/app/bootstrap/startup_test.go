package bootstrap

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/roboticsclub/robohub/internal/domain/models"
	"github.com/roboticsclub/robohub/internal/testutil"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureAdminUser_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	err := ensureAdminUser(ctx, deps, "admin@club.example.edu", testLogger())
	if err != nil {
		t.Fatalf("ensureAdminUser failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"email": "admin@club.example.edu"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}

	if !user.Authorized {
		t.Error("expected created admin user to be authorized")
	}
	if user.FullName == "" {
		t.Error("expected created admin user to have a name")
	}
}

func TestEnsureAdminUser_AuthorizesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Existing user that has not been authorized yet.
	now := time.Now().UTC()
	existing := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   "Pending Admin",
		Email:      "pending@club.example.edu",
		Authorized: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := db.Collection("users").InsertOne(ctx, existing); err != nil {
		t.Fatalf("failed to insert existing user: %v", err)
	}

	deps := DBDeps{MongoDatabase: db}

	err := ensureAdminUser(ctx, deps, "pending@club.example.edu", testLogger())
	if err != nil {
		t.Fatalf("ensureAdminUser failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}

	if !user.Authorized {
		t.Error("expected existing user to be authorized")
	}

	// No second record for the same email.
	count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "pending@club.example.edu"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user record, got %d", count)
	}
}

func TestEnsureAdminUser_AlreadyAuthorized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	existing := f.CreateAdminUser(ctx, "Site Admin", "admin@club.example.edu")

	deps := DBDeps{MongoDatabase: db}

	// Should succeed without modifying anything.
	err := ensureAdminUser(ctx, deps, "admin@club.example.edu", testLogger())
	if err != nil {
		t.Fatalf("ensureAdminUser failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if !user.Authorized {
		t.Error("expected user to stay authorized")
	}
	if user.GoogleUID != existing.GoogleUID {
		t.Error("expected user record to be unchanged")
	}
}
