package landingstore_test

import (
	"errors"
	"fmt"
	"testing"

	landingstore "github.com/roboticsclub/robohub/internal/app/store/landing"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"github.com/roboticsclub/robohub/internal/testutil"
)

func TestStore_Create_EnforcesCap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := landingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < models.LandingProjectCap; i++ {
		_, err := store.Create(ctx, models.LandingProject{
			Title: fmt.Sprintf("Featured %d", i+1),
		})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i+1, err)
		}
	}

	_, err := store.Create(ctx, models.LandingProject{Title: "One Too Many"})
	if !errors.Is(err, landingstore.ErrCapReached) {
		t.Errorf("got %v, want ErrCapReached", err)
	}
}

func TestStore_Create_CapFreedByDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := landingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	var first models.LandingProject
	for i := 0; i < models.LandingProjectCap; i++ {
		lp, err := store.Create(ctx, models.LandingProject{
			Title: fmt.Sprintf("Featured %d", i+1),
		})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i+1, err)
		}
		if i == 0 {
			first = lp
		}
	}

	n, err := store.Delete(ctx, first.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}

	if _, err := store.Create(ctx, models.LandingProject{Title: "Replacement"}); err != nil {
		t.Errorf("Create after delete failed: %v", err)
	}
}

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := landingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lp, err := store.Create(ctx, models.LandingProject{Title: "Rover"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if lp.Status != models.LandingInProgress {
		t.Errorf("default status = %q, want %q", lp.Status, models.LandingInProgress)
	}
	if lp.TitleCI == "" {
		t.Error("expected TitleCI to be set")
	}
}

func TestStore_Create_BadStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := landingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.LandingProject{Title: "X", Status: "done"}); err == nil {
		t.Error("expected error for invalid status")
	}
}
