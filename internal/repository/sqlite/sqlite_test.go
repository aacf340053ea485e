package sqlite

import (
	"context"
	"testing"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
)

// newTestDB returns a fresh in-memory database. ":memory:" is fast,
// isolated per test, and vanishes when the connection closes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestAccount creates an account and fails the test on error.
func createTestAccount(t *testing.T, r *AccountDB, email, username string) *model.Account {
	t.Helper()
	account := &model.Account{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$04$fakehashforrepositorytests",
	}
	if err := r.Create(context.Background(), account); err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

func TestInitialize_IdempotentOnExistingFile(t *testing.T) {
	path := t.TempDir() + "/faculties.db"

	db, err := New(path)
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	createTestAccount(t, db.Accounts(), "keep@example.com", "Keep")
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening must keep existing rows: the schema setup is CREATE TABLE
	// IF NOT EXISTS, never a rebuild.
	db2, err := New(path)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	t.Cleanup(func() { db2.Close() })

	n, err := db2.Accounts().Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("account count after reopen = %d, want 1", n)
	}
}
