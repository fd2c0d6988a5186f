package eventstore_test

import (
	"testing"

	eventstore "github.com/roboticsclub/robohub/internal/app/store/events"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"github.com/roboticsclub/robohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Event{
		Name:  "Robowars 2026",
		Date:  "2026-03-15",
		Place: "Main Auditorium",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.Status != models.EventUpcoming {
		t.Errorf("default status = %q, want %q", created.Status, models.EventUpcoming)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_InvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Event{Name: "X", Status: "cancelled"}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestStore_GetByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateEvent(ctx, "Past Workshop", models.EventPast)
	fx.CreateEvent(ctx, "Current Build Night", models.EventOngoing)
	fx.CreateEvent(ctx, "Upcoming Robowars", models.EventUpcoming)

	upcoming, err := store.GetByStatus(ctx, models.EventUpcoming)
	if err != nil {
		t.Fatalf("GetByStatus failed: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Name != "Upcoming Robowars" {
		t.Errorf("upcoming = %v", upcoming)
	}

	all, err := store.GetByStatus(ctx, "all")
	if err != nil {
		t.Fatalf("GetByStatus(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d events for \"all\", want 3", len(all))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Event{Name: "Workshop"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, models.Event{Status: models.EventPast, Place: "Lab 2"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.EventPast || got.Place != "Lab 2" {
		t.Errorf("after update: status=%q place=%q", got.Status, got.Place)
	}
	// Name untouched when not provided.
	if got.Name != "Workshop" {
		t.Errorf("name changed unexpectedly: %q", got.Name)
	}
}
