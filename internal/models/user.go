package models

import "time"

// User captures application-facing fields for a registered identity.
// PasswordHash holds the salt:digest credential record and is never
// serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy safe for API responses, with the credential
// record cleared.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
