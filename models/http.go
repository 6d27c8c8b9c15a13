package models

import "time"

// Response is the uniform envelope returned by every API endpoint.
// Payload-carrying responses embed it so that `success` and `message`
// always appear at the top level of the JSON object.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	PIN      string `json:"pin"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RevealRequest is the body of POST /api/keys/{id}/reveal.
// The PIN is re-checked against the account's stored digest on every reveal.
type RevealRequest struct {
	PIN string `json:"pin"`
}

// CreateKeyRequest is the body of POST /api/keys. KeyValue is the plaintext
// secret; it is encrypted before persistence and never stored as-is.
type CreateKeyRequest struct {
	Title    string  `json:"title"`
	KeyValue string  `json:"key_value"`
	WebLink  *string `json:"web_link,omitempty"`
}

// UpdateKeyRequest is the body of PUT /api/keys/{id}. Only fields present in
// the JSON body are applied; absent fields stay untouched.
type UpdateKeyRequest struct {
	Title    *string `json:"title"`
	KeyValue *string `json:"key_value"`
	WebLink  *string `json:"web_link"`
}

// UserPayload is the public profile of an account. It never carries
// credential digests.
type UserPayload struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// AuthResponse is returned by register and login: the session token plus the
// public profile.
type AuthResponse struct {
	Response
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// UserResponse is returned by GET /api/auth/me.
type UserResponse struct {
	Response
	User UserPayload `json:"user"`
}

// KeyMetadata is the non-secret view of a stored key. List and create
// responses are built from it; the ciphertext and plaintext value are never
// included.
type KeyMetadata struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	WebLink   *string   `json:"web_link"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// KeysResponse is returned by GET /api/keys.
type KeysResponse struct {
	Response
	Keys []KeyMetadata `json:"keys"`
}

// KeyResponse is returned by POST /api/keys.
type KeyResponse struct {
	Response
	Key KeyMetadata `json:"key"`
}

// RevealedKey is the decrypted view of a stored key returned by a successful
// reveal. KeyValue holds the plaintext; it exists only in the response body
// and is never written back to storage.
type RevealedKey struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	KeyValue  string    `json:"key_value"`
	WebLink   *string   `json:"web_link"`
	CreatedAt time.Time `json:"created_at"`
}

// RevealResponse is returned by POST /api/keys/{id}/reveal.
type RevealResponse struct {
	Response
	Key RevealedKey `json:"key"`
}
