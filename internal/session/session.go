// Package session implements server-side authentication sessions.
//
// A session maps an opaque random token (carried in an HttpOnly cookie) to
// the authenticated account's identity. The store lives in process memory
// and is injected into whoever needs it — there is no ambient global state,
// and destroying the token on logout genuinely ends the session, which is
// why this is a store rather than a signed stateless token.
//
// Expired entries are dropped lazily when they are next looked up; the
// store runs no background sweeper.
package session

import (
	"sync"
	"time"

	"github.com/rs/xid"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// Session is the per-client authentication state held between requests.
type Session struct {
	Token     string
	AccountID int64
	Username  string
	Email     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// Store holds active sessions keyed by token.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewStore creates an empty store. A non-positive ttl falls back to
// DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session for the account and returns it. The token
// is a fresh xid — unguessable enough for a cookie value and cheap to
// generate.
func (s *Store) Create(accountID int64, username, email string, isAdmin bool) *Session {
	sess := &Session{
		Token:     xid.New().String(),
		AccountID: accountID,
		Username:  username,
		Email:     email,
		IsAdmin:   isAdmin,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for token, or (nil, false) if the token is
// unknown or expired. Expired sessions are removed on the spot.
func (s *Store) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, false
	}
	return sess, true
}

// Destroy removes the session for token. Unknown tokens are a no-op, so
// logout is unconditional.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Active returns the number of live (possibly expired but not yet reaped)
// sessions. Used by tests.
func (s *Store) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
