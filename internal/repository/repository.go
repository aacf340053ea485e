// Package repository declares the data access interfaces.
//
// Services depend on these interfaces, never on the concrete SQLite types,
// so tests can substitute in-memory fakes and the storage engine can be
// swapped without touching business logic.
package repository

import (
	"context"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
)

// AccountRepository persists user accounts. Accounts are created once and
// never updated or deleted.
type AccountRepository interface {
	// Create inserts the account and fills in its storage-assigned ID and
	// CreatedAt. A duplicate email surfaces as apperror.ErrConflict.
	Create(ctx context.Context, account *model.Account) error
	// FindByEmail does a case-sensitive exact-match lookup. Returns
	// apperror.ErrNotFound when no account has that email.
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	Count(ctx context.Context) (int, error)
}

// InstitutionRepository persists catalog entries. They are written only by
// the startup seeder and read-only thereafter.
type InstitutionRepository interface {
	Create(ctx context.Context, inst *model.Institution) error
	// GetAll returns every record in insertion order.
	GetAll(ctx context.Context) ([]model.Institution, error)
	Count(ctx context.Context) (int, error)
}

// LoginEventRepository appends and aggregates the login audit trail.
type LoginEventRepository interface {
	Create(ctx context.Context, event *model.LoginEvent) error
	Count(ctx context.Context) (int, error)
	// Recent returns at most limit events joined with their account,
	// newest first. Events whose account no longer exists are skipped.
	Recent(ctx context.Context, limit int) ([]model.RecentLogin, error)
}
