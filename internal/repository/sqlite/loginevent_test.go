package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
)

func TestLoginEventCreate(t *testing.T) {
	db := newTestDB(t)
	account := createTestAccount(t, db.Accounts(), "visitor@example.com", "Visitor")
	r := db.LoginEvents()

	event := &model.LoginEvent{
		AccountID: account.ID,
		IPAddress: "192.0.2.10",
	}
	if err := r.Create(context.Background(), event); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if event.ID == 0 {
		t.Error("Create() did not set event.ID")
	}
	if event.Timestamp.IsZero() {
		t.Error("Create() did not assign a server timestamp")
	}
}

func TestLoginEventCount(t *testing.T) {
	db := newTestDB(t)
	account := createTestAccount(t, db.Accounts(), "visitor@example.com", "Visitor")
	r := db.LoginEvents()

	for i := 0; i < 4; i++ {
		event := &model.LoginEvent{AccountID: account.ID, IPAddress: "192.0.2.1"}
		if err := r.Create(context.Background(), event); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	n, err := r.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}
}

func TestLoginEventRecent_NewestFirstAndLimited(t *testing.T) {
	db := newTestDB(t)
	account := createTestAccount(t, db.Accounts(), "maria@example.com", "Maria")
	r := db.LoginEvents()

	// 12 logins from distinct addresses; only the last 10 should come back.
	for i := 0; i < 12; i++ {
		event := &model.LoginEvent{
			AccountID: account.ID,
			IPAddress: fmt.Sprintf("192.0.2.%d", i),
		}
		if err := r.Create(context.Background(), event); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	recent, err := r.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("Recent() returned %d rows, want 10", len(recent))
	}

	// Newest first: the last insert (192.0.2.11) leads, the two oldest
	// (192.0.2.0 and .1) are cut off.
	if recent[0].IP != "192.0.2.11" {
		t.Errorf("Recent()[0].IP = %q, want %q", recent[0].IP, "192.0.2.11")
	}
	if recent[9].IP != "192.0.2.2" {
		t.Errorf("Recent()[9].IP = %q, want %q", recent[9].IP, "192.0.2.2")
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp.After(recent[i-1].Timestamp) {
			t.Errorf("Recent()[%d] is newer than Recent()[%d]", i, i-1)
		}
	}
}

func TestLoginEventRecent_JoinsAccountDisplayForm(t *testing.T) {
	db := newTestDB(t)
	account := createTestAccount(t, db.Accounts(), "admin@luanda.ao", "Administrador")
	r := db.LoginEvents()

	event := &model.LoginEvent{AccountID: account.ID, IPAddress: "203.0.113.5"}
	if err := r.Create(context.Background(), event); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	recent, err := r.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Recent() returned %d rows, want 1", len(recent))
	}

	want := "Administrador (admin@luanda.ao)"
	if recent[0].Username != want {
		t.Errorf("Username = %q, want %q", recent[0].Username, want)
	}
	if recent[0].IP != "203.0.113.5" {
		t.Errorf("IP = %q, want %q", recent[0].IP, "203.0.113.5")
	}
}

func TestLoginEventRecent_EmptyTable(t *testing.T) {
	r := newTestDB(t).LoginEvents()

	recent, err := r.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Recent() returned %d rows, want 0", len(recent))
	}
}
