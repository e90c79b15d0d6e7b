package model

import "time"

// User is an account that can authenticate against the service.
// Users gate access to the logbook; they are not linked to aircraft
// or flight records.
type User struct {
	ID           int64
	Username     string // login username (immutable, case-sensitive)
	PasswordHash string // bcrypt hash, never the plaintext
	CreatedAt    time.Time
}
