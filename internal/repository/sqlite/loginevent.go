package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
)

// LoginEventDB implements repository.LoginEventRepository. The table is
// append-only: events are written on successful login and never touched
// again.
type LoginEventDB struct {
	conn *sql.DB
}

var _ repository.LoginEventRepository = (*LoginEventDB)(nil)

// LoginEvents returns the audit-trail repository view of the database.
func (db *DB) LoginEvents() *LoginEventDB {
	return &LoginEventDB{conn: db.conn}
}

// Create appends a login event. The timestamp is assigned here, at insert
// time, so the audit trail reflects server time rather than anything the
// client sent.
func (r *LoginEventDB) Create(ctx context.Context, event *model.LoginEvent) error {
	event.Timestamp = time.Now()

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO login_events (account_id, timestamp, ip_address)
		 VALUES (?, ?, ?)`,
		event.AccountID,
		event.Timestamp,
		event.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting login event (accountID=%d): %w", event.AccountID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading login event insert id: %w", err)
	}
	event.ID = id

	return nil
}

// Count returns the total number of recorded logins.
func (r *LoginEventDB) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM login_events`,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: counting login events: %w", err)
	}
	return n, nil
}

// Recent returns the newest events first, joined with their account so the
// admin view can show who logged in. The id tiebreak keeps the order stable
// when two logins land on the same timestamp. The inner join drops events
// whose account row is gone.
func (r *LoginEventDB) Recent(ctx context.Context, limit int) ([]model.RecentLogin, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT e.timestamp, a.username, a.email, e.ip_address
		 FROM login_events e
		 JOIN accounts a ON e.account_id = a.id
		 ORDER BY e.timestamp DESC, e.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing recent logins: %w", err)
	}
	defer rows.Close()

	logins := []model.RecentLogin{}
	for rows.Next() {
		var (
			login    model.RecentLogin
			username string
			email    string
			ip       sql.NullString
		)
		if err := rows.Scan(&login.Timestamp, &username, &email, &ip); err != nil {
			return nil, fmt.Errorf("sqlite: scanning recent login: %w", err)
		}
		login.Username = fmt.Sprintf("%s (%s)", username, email)
		login.IP = ip.String
		logins = append(logins, login)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating recent logins: %w", err)
	}

	return logins, nil
}
