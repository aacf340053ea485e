// Package auth provides password hashing for the account flow.
//
// Passwords are stored only as bcrypt hashes. bcrypt generates a random
// salt per hash and embeds it in the output, so no separate salt column is
// needed, and CompareHashAndPassword is constant-time, so verification does
// not leak timing information.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/apperror"
)

// defaultCost is the bcrypt work factor. Cost 12 takes roughly a quarter of
// a second per hash on current hardware — fine for a login, expensive for a
// brute-force attacker.
const defaultCost = 12

// Hasher hashes and verifies passwords. The cost is a field (rather than a
// package constant used directly) so tests can run at the bcrypt minimum.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the production cost.
func NewHasher() *Hasher {
	return &Hasher{cost: defaultCost}
}

// NewHasherForTest returns a Hasher with a caller-chosen cost. Use
// bcrypt.MinCost in tests; never in production.
func NewHasherForTest(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. The result is self-contained
// (version, cost, salt, digest) and goes straight into the password_hash
// column.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead.
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify checks plaintext against a stored hash. A mismatch is reported as
// apperror.ErrUnauthorized so callers can treat "wrong password" and
// "no such account" identically.
func (h *Hasher) Verify(hash, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperror.Unauthorized("Credenciais inválidas")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
