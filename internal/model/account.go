// Package model defines the data structures used throughout the application.
package model

import "time"

// Account represents a registered user.
//
// The ID is assigned by SQLite (INTEGER PRIMARY KEY AUTOINCREMENT), so it is
// zero until the repository inserts the row. Email is unique at the storage
// level; lookups are case-sensitive exact matches.
//
// PasswordHash holds a bcrypt hash, never the plaintext password. The json
// tag "-" makes sure the hash can never leak into an API response, even if a
// handler accidentally serializes the whole struct.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}
