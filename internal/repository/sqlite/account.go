package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/apperror"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
)

// AccountDB implements repository.AccountRepository. Obtain one via
// DB.Accounts — it shares the parent pool, so there is nothing to close.
type AccountDB struct {
	conn *sql.DB
}

var _ repository.AccountRepository = (*AccountDB)(nil)

// Accounts returns the account repository view of the database.
func (db *DB) Accounts() *AccountDB {
	return &AccountDB{conn: db.conn}
}

// Create inserts a new account and fills in its ID and CreatedAt.
//
// Email uniqueness is enforced by the UNIQUE constraint, not by this method.
// Callers pre-check with FindByEmail for the user-facing conflict message,
// but two concurrent registrations can still race past that check — the
// losing insert lands here and is reported as apperror.ErrConflict.
func (r *AccountDB) Create(ctx context.Context, account *model.Account) error {
	account.CreatedAt = time.Now()

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO accounts (email, username, password_hash, is_admin, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		account.Email,
		account.Username,
		account.PasswordHash,
		account.IsAdmin,
		account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("E-mail já cadastrado")
		}
		return fmt.Errorf("sqlite: inserting account (email=%s): %w", account.Email, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading account insert id: %w", err)
	}
	account.ID = id

	return nil
}

// FindByEmail retrieves an account by exact email match. SQLite TEXT
// comparison is case-sensitive, so "Admin@x" and "admin@x" are distinct.
func (r *AccountDB) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, email, username, password_hash, is_admin, created_at
		 FROM accounts WHERE email = ?`,
		email,
	).Scan(
		&a.ID,
		&a.Email,
		&a.Username,
		&a.PasswordHash,
		&a.IsAdmin,
		&a.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("account", email)
		}
		return nil, fmt.Errorf("sqlite: finding account by email %s: %w", email, err)
	}

	return &a, nil
}

// Count returns the total number of accounts.
func (r *AccountDB) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts`,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: counting accounts: %w", err)
	}
	return n, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
// The driver exposes constraint failures only through the error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
