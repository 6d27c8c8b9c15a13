package models

import "time"

// User represents a vault account used for authentication and ownership of
// stored API keys. Credential digests are bcrypt hashes and must never leave
// the server process.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique handle used during authentication.
	Username string `json:"username"`

	// FullName is the display name of the user. Non-sensitive.
	FullName string `json:"full_name"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized to JSON.
	PasswordHash string `json:"-"`

	// PINHash is the bcrypt digest of the user's 4-digit reveal PIN.
	// Never serialized to JSON.
	PINHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
