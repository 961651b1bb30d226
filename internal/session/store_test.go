package session_test

import (
	"fmt"
	"testing"
	"time"

	"ecoshop-assistant/internal/router"
	"ecoshop-assistant/internal/session"
)

func TestStore_GetCreatesLazily(t *testing.T) {
	store := session.NewStore(10, time.Minute)

	sess := store.Get("user-1")
	if sess.UserID != "user-1" {
		t.Errorf("unexpected user id %q", sess.UserID)
	}
	if len(sess.History) != 0 {
		t.Errorf("new session should have empty history")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}

	// Same user returns the same session.
	again := store.Get("user-1")
	if again != sess {
		t.Errorf("expected the same session instance")
	}
}

func TestStore_RecordAppendsHistory(t *testing.T) {
	store := session.NewStore(10, time.Minute)

	store.Record("u", "show me shirts", router.IntentSearch, "")
	store.Record("u", "electronics please", router.IntentCategory, "electronics")
	sess := store.Record("u", "thanks", router.IntentGeneral, "")

	if len(sess.History) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(sess.History))
	}
	if sess.History[0].Message != "show me shirts" {
		t.Errorf("history order broken: %q", sess.History[0].Message)
	}
	if sess.LastIntent != router.IntentGeneral {
		t.Errorf("last intent = %s, want general", sess.LastIntent)
	}
	// Category sticks from the last message that had one.
	if sess.LastCategory != "electronics" {
		t.Errorf("last category = %q, want electronics", sess.LastCategory)
	}
}

func TestStore_CapacityEviction(t *testing.T) {
	store := session.NewStore(2, time.Minute)

	for i := 0; i < 5; i++ {
		store.Record(fmt.Sprintf("user-%d", i), "hi", router.IntentGeneral, "")
	}

	if store.Len() != 2 {
		t.Errorf("expected store bounded at 2 sessions, got %d", store.Len())
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	store := session.NewStore(10, 20*time.Millisecond)

	store.Record("u", "hi", router.IntentGeneral, "")
	time.Sleep(60 * time.Millisecond)

	// Expired entry is gone; Get creates a fresh one.
	sess := store.Get("u")
	if len(sess.History) != 0 {
		t.Errorf("expected fresh session after TTL expiry, history has %d entries", len(sess.History))
	}
}
