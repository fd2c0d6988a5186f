package memberstore_test

import (
	"testing"

	memberstore "github.com/roboticsclub/robohub/internal/app/store/members"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"github.com/roboticsclub/robohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Member{
		Name:   "  Asha Verma ",
		Email:  " Asha@Example.COM ",
		Mobile: "98765 432-10",
		Course: "B.Tech",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Asha Verma" {
		t.Errorf("name not trimmed: %q", created.Name)
	}
	if created.Email != "asha@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.Mobile != "9876543210" {
		t.Errorf("mobile not normalized: %q", created.Mobile)
	}
	if created.SubmittedTimestamp == 0 {
		t.Error("expected SubmittedTimestamp to be stamped")
	}
	if created.PaymentStatus {
		t.Error("new applications must start unpaid")
	}
}

func TestStore_Create_DuplicateEmailAccepted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Member{Name: "First", Email: "dup@x.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Re-applying is allowed; the review list flags the duplicate.
	second, err := store.Create(ctx, models.Member{Name: "Second", Email: "DUP@x.com"})
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if second.Email != "dup@x.com" {
		t.Errorf("email not normalized on repeat application: %q", second.Email)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d applications, want both kept", len(all))
	}
}

func TestStore_SetPaymentStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Member{Name: "A", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetPaymentStatus(ctx, created.ID, true); err != nil {
		t.Fatalf("SetPaymentStatus failed: %v", err)
	}

	m, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !m.PaymentStatus {
		t.Error("payment status not set")
	}
	if !m.UpdatedAt.After(m.CreatedAt) {
		t.Error("UpdatedAt not refreshed")
	}
}

func TestStore_GetAll_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Member{Name: "First", Email: "one@x.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Member{Name: "Second", Email: "two@x.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d members, want 2", len(all))
	}
	if all[0].SubmittedTimestamp < all[1].SubmittedTimestamp {
		t.Error("members not sorted newest first")
	}
}
