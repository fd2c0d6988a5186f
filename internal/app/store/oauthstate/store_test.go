package oauthstate_test

import (
	"testing"
	"time"

	"github.com/roboticsclub/robohub/internal/app/store/oauthstate"
	"github.com/roboticsclub/robohub/internal/testutil"
)

func TestStore_SaveAndValidate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state := "test-state-123"
	expiresAt := time.Now().Add(10 * time.Minute)

	if err := store.Save(ctx, state, "/admin", expiresAt); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	returnURL, valid, err := store.Validate(ctx, state)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !valid {
		t.Fatal("expected state to be valid")
	}
	if returnURL != "/admin" {
		t.Errorf("returnURL = %q, want /admin", returnURL)
	}

	// One-time use: second validation must fail.
	_, valid, err = store.Validate(ctx, state)
	if err != nil {
		t.Fatalf("second Validate failed: %v", err)
	}
	if valid {
		t.Error("state valid twice; must be single use")
	}
}

func TestStore_Validate_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, "expired-state", "", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, valid, err := store.Validate(ctx, "expired-state")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if valid {
		t.Error("expired state reported valid")
	}
}
