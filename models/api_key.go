package models

import "time"

// APIKey is a stored third-party secret owned by exactly one user.
// KeyValue holds the AES-GCM ciphertext token; the plaintext exists only
// transiently in memory during create, update, and reveal.
type APIKey struct {
	// ID is the internal unique identifier of the record.
	ID int64 `json:"id"`

	// UserID references the owning user. Every query against api_keys is
	// scoped by this field so cross-account probing surfaces as not-found.
	UserID int64 `json:"-"`

	// Title is a non-secret label chosen by the user.
	Title string `json:"title"`

	// KeyValue is the encrypted secret value (base64 nonce‖ciphertext).
	// Never serialized to JSON.
	KeyValue string `json:"-"`

	// WebLink is an optional reference URL. Nil maps to SQL NULL.
	WebLink *string `json:"web_link"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the APIKey model.
func (k APIKey) TableName() string {
	return "api_keys"
}

// APIKeyUpdate represents a partial update of a single stored key.
// Only non-nil fields are applied, preserving "touch only what is present"
// semantics with static typing instead of runtime key inspection.
type APIKeyUpdate struct {
	// ID is the identifier of the record to update. Required.
	ID int64

	// UserID is the owner of the record. Required for data isolation.
	UserID int64

	// Title replaces the label when non-nil.
	Title *string

	// KeyValue replaces the ciphertext when non-nil. The service layer is
	// responsible for encrypting the plaintext before it reaches the store.
	KeyValue *string

	// WebLink replaces the reference URL when non-nil. A pointer to an
	// empty string clears the link.
	WebLink *string
}

// IsEmpty reports whether the update carries no fields to apply.
func (u APIKeyUpdate) IsEmpty() bool {
	return u.Title == nil && u.KeyValue == nil && u.WebLink == nil
}
