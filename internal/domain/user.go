package domain

import "time"

// User represents a registered account. PasswordHash holds the bcrypt
// digest; the plaintext password is never stored.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
