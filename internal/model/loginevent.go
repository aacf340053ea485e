package model

import "time"

// LoginEvent is an audit record appended on every successful login.
// Rows are never mutated or pruned. AccountID is a foreign key without a
// cascade — if an account is ever removed the event simply dangles.
type LoginEvent struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"accountId"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress"`
}

// RecentLogin is a login event joined with its account, shaped for the admin
// statistics view. Username carries the "Name (email)" display form.
type RecentLogin struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	IP        string    `json:"ip"`
}
