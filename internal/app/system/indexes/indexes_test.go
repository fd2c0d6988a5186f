package indexes_test

import (
	"testing"

	"github.com/roboticsclub/robohub/internal/app/system/indexes"
	"github.com/roboticsclub/robohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesUserIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("users").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	indexNames := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			indexNames[name] = true
		}
	}

	expectedIndexes := []string{
		"uniq_users_email",
		"uniq_users_googleuid",
	}

	for _, name := range expectedIndexes {
		if !indexNames[name] {
			t.Errorf("expected index %q to exist on users collection", name)
		}
	}
}

func TestEnsureAll_CreatesMemberIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("members").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	indexNames := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			indexNames[name] = true
		}
	}

	expectedIndexes := []string{
		"idx_members_email",
		"idx_members_nameci__id",
		"idx_members_submitted",
	}

	for _, name := range expectedIndexes {
		if !indexNames[name] {
			t.Errorf("expected index %q to exist on members collection", name)
		}
	}
}

func TestEnsureAll_CreatesFestApplicationIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("fest_applications").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	indexNames := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			indexNames[name] = true
		}
	}

	expectedIndexes := []string{
		"idx_festapps_status_submitted",
		"idx_festapps_email",
	}

	for _, name := range expectedIndexes {
		if !indexNames[name] {
			t.Errorf("expected index %q to exist on fest_applications collection", name)
		}
	}
}

func TestEnsureAll_UniqueIndexEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Run EnsureAll to create indexes
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Insert a team roster for one year
	_, err = db.Collection("teams").InsertOne(ctx, bson.M{"year": "2025-26"})
	if err != nil {
		t.Fatalf("Insert team failed: %v", err)
	}

	// A second roster for the same year should fail
	_, err = db.Collection("teams").InsertOne(ctx, bson.M{"year": "2025-26"})
	if err == nil {
		t.Error("expected duplicate key error for unique index on teams.year")
	}
}

func TestEnsureAll_MemberEmailNotUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Re-applying with the same email is allowed; the review list
	// flags duplicates instead of the index rejecting them.
	for i := 0; i < 2; i++ {
		if _, err := db.Collection("members").InsertOne(ctx, bson.M{"email": "dup@x.com"}); err != nil {
			t.Fatalf("insert %d failed: %v", i+1, err)
		}
	}
}
